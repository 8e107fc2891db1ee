package rest

import (
	"time"

	eventdomain "github.com/aashu-app/aashu/internal/events/domain"
	musicdomain "github.com/aashu-app/aashu/internal/music/domain"
	"github.com/aashu-app/aashu/internal/storage"
	taskdomain "github.com/aashu-app/aashu/internal/tasks/domain"
	timerdomain "github.com/aashu-app/aashu/internal/timers/domain"
)

type taskPayload struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationMinutes int        `json:"durationMinutes,omitempty"`
	IsAllDay        bool       `json:"isAllDay"`
	Category        string     `json:"category"`
	Color           string     `json:"color"`
	Icon            string     `json:"icon,omitempty"`
	ReminderTime    *time.Time `json:"reminderTime,omitempty"`
	RepeatPattern   string     `json:"repeatPattern,omitempty"`
	Tags            []string   `json:"tags"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func toTaskPayload(task taskdomain.Task) taskPayload {
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskPayload{
		ID:              task.ID,
		UserID:          task.UserID,
		Title:           task.Title,
		Description:     task.Description,
		Status:          string(task.Status),
		Priority:        string(task.Priority),
		DueDate:         task.DueDate,
		StartTime:       task.StartTime,
		EndTime:         task.EndTime,
		DurationMinutes: task.DurationMinutes,
		IsAllDay:        task.IsAllDay,
		Category:        task.Category,
		Color:           task.Color,
		Icon:            task.Icon,
		ReminderTime:    task.ReminderTime,
		RepeatPattern:   task.RepeatPattern,
		Tags:            tags,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
}

func toTaskPayloads(tasks []taskdomain.Task) []taskPayload {
	payloads := make([]taskPayload, 0, len(tasks))
	for _, task := range tasks {
		payloads = append(payloads, toTaskPayload(task))
	}
	return payloads
}

type createTaskRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	DueDate         *time.Time `json:"dueDate"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	DurationMinutes int        `json:"durationMinutes"`
	IsAllDay        bool       `json:"isAllDay"`
	Category        string     `json:"category"`
	Color           string     `json:"color"`
	Icon            string     `json:"icon"`
	ReminderTime    *time.Time `json:"reminderTime"`
	RepeatPattern   string     `json:"repeatPattern"`
	Tags            []string   `json:"tags"`
}

func (r createTaskRequest) toInput() taskdomain.CreateTaskInput {
	return taskdomain.CreateTaskInput{
		Title:           r.Title,
		Description:     r.Description,
		Status:          taskdomain.Status(r.Status),
		Priority:        taskdomain.Priority(r.Priority),
		DueDate:         r.DueDate,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes,
		IsAllDay:        r.IsAllDay,
		Category:        r.Category,
		Color:           r.Color,
		Icon:            r.Icon,
		ReminderTime:    r.ReminderTime,
		RepeatPattern:   r.RepeatPattern,
		Tags:            r.Tags,
	}
}

type updateTaskRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Status          *string    `json:"status"`
	Priority        *string    `json:"priority"`
	DueDate         *time.Time `json:"dueDate"`
	StartTime       *time.Time `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	DurationMinutes *int       `json:"durationMinutes"`
	IsAllDay        *bool      `json:"isAllDay"`
	Category        *string    `json:"category"`
	Color           *string    `json:"color"`
	Icon            *string    `json:"icon"`
	ReminderTime    *time.Time `json:"reminderTime"`
	RepeatPattern   *string    `json:"repeatPattern"`
	Tags            []string   `json:"tags"`
}

func (r updateTaskRequest) toPatch() taskdomain.Patch {
	patch := taskdomain.Patch{
		Title:           r.Title,
		Description:     r.Description,
		DueDate:         r.DueDate,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes,
		IsAllDay:        r.IsAllDay,
		Category:        r.Category,
		Color:           r.Color,
		Icon:            r.Icon,
		ReminderTime:    r.ReminderTime,
		RepeatPattern:   r.RepeatPattern,
		Tags:            r.Tags,
	}
	if r.Status != nil {
		status := taskdomain.Status(*r.Status)
		patch.Status = &status
	}
	if r.Priority != nil {
		priority := taskdomain.Priority(*r.Priority)
		patch.Priority = &priority
	}
	return patch
}

type recurrencePayload struct {
	Frequency  string     `json:"frequency"`
	Interval   int        `json:"interval"`
	DaysOfWeek []int      `json:"daysOfWeek,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Count      int        `json:"count,omitempty"`
}

func toRecurrencePayload(rule *eventdomain.Recurrence) *recurrencePayload {
	if rule == nil {
		return nil
	}
	return &recurrencePayload{
		Frequency:  string(rule.Frequency),
		Interval:   rule.Interval,
		DaysOfWeek: rule.DaysOfWeek,
		EndDate:    rule.EndDate,
		Count:      rule.Count,
	}
}

func (p *recurrencePayload) toDomain() *eventdomain.Recurrence {
	if p == nil {
		return nil
	}
	return &eventdomain.Recurrence{
		Frequency:  eventdomain.Frequency(p.Frequency),
		Interval:   p.Interval,
		DaysOfWeek: p.DaysOfWeek,
		EndDate:    p.EndDate,
		Count:      p.Count,
	}
}

type eventPayload struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId"`
	Title        string             `json:"title"`
	Description  string             `json:"description,omitempty"`
	StartTime    time.Time          `json:"startTime"`
	EndTime      time.Time          `json:"endTime"`
	Location     string             `json:"location,omitempty"`
	Color        string             `json:"color"`
	Icon         string             `json:"icon,omitempty"`
	IsRecurring  bool               `json:"isRecurring"`
	Recurrence   *recurrencePayload `json:"recurrence,omitempty"`
	ReminderTime *time.Time         `json:"reminderTime,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func toEventPayload(event eventdomain.Event) eventPayload {
	return eventPayload{
		ID:           event.ID,
		UserID:       event.UserID,
		Title:        event.Title,
		Description:  event.Description,
		StartTime:    event.StartTime,
		EndTime:      event.EndTime,
		Location:     event.Location,
		Color:        event.Color,
		Icon:         event.Icon,
		IsRecurring:  event.IsRecurring,
		Recurrence:   toRecurrencePayload(event.Recurrence),
		ReminderTime: event.ReminderTime,
		CreatedAt:    event.CreatedAt,
		UpdatedAt:    event.UpdatedAt,
	}
}

func toEventPayloads(events []eventdomain.Event) []eventPayload {
	payloads := make([]eventPayload, 0, len(events))
	for _, event := range events {
		payloads = append(payloads, toEventPayload(event))
	}
	return payloads
}

type createEventRequest struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	StartTime    *time.Time         `json:"startTime"`
	EndTime      *time.Time         `json:"endTime"`
	Location     string             `json:"location"`
	Color        string             `json:"color"`
	Icon         string             `json:"icon"`
	IsRecurring  bool               `json:"isRecurring"`
	Recurrence   *recurrencePayload `json:"recurrence"`
	ReminderTime *time.Time         `json:"reminderTime"`
}

func (r createEventRequest) toInput() eventdomain.CreateEventInput {
	input := eventdomain.CreateEventInput{
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		Color:        r.Color,
		Icon:         r.Icon,
		IsRecurring:  r.IsRecurring,
		Recurrence:   r.Recurrence.toDomain(),
		ReminderTime: r.ReminderTime,
	}
	if r.StartTime != nil {
		input.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		input.EndTime = *r.EndTime
	}
	return input
}

type updateEventRequest struct {
	Title        *string            `json:"title"`
	Description  *string            `json:"description"`
	StartTime    *time.Time         `json:"startTime"`
	EndTime      *time.Time         `json:"endTime"`
	Location     *string            `json:"location"`
	Color        *string            `json:"color"`
	Icon         *string            `json:"icon"`
	IsRecurring  *bool              `json:"isRecurring"`
	Recurrence   *recurrencePayload `json:"recurrence"`
	ReminderTime *time.Time         `json:"reminderTime"`
}

func (r updateEventRequest) toPatch() eventdomain.Patch {
	return eventdomain.Patch{
		Title:        r.Title,
		Description:  r.Description,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Location:     r.Location,
		Color:        r.Color,
		Icon:         r.Icon,
		IsRecurring:  r.IsRecurring,
		Recurrence:   r.Recurrence.toDomain(),
		ReminderTime: r.ReminderTime,
	}
}

type timerPayload struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	Kind            string    `json:"kind"`
	Color           string    `json:"color"`
	Icon            string    `json:"icon"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toTimerPayload(timer timerdomain.Timer) timerPayload {
	return timerPayload{
		ID:              timer.ID,
		UserID:          timer.UserID,
		Name:            timer.Name,
		DurationMinutes: timer.DurationMinutes,
		Kind:            string(timer.Kind),
		Color:           timer.Color,
		Icon:            timer.Icon,
		CreatedAt:       timer.CreatedAt,
		UpdatedAt:       timer.UpdatedAt,
	}
}

func toTimerPayloads(timers []timerdomain.Timer) []timerPayload {
	payloads := make([]timerPayload, 0, len(timers))
	for _, timer := range timers {
		payloads = append(payloads, toTimerPayload(timer))
	}
	return payloads
}

type createTimerRequest struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Kind            string `json:"kind"`
	Color           string `json:"color"`
	Icon            string `json:"icon"`
}

func (r createTimerRequest) toInput() timerdomain.CreateTimerInput {
	return timerdomain.CreateTimerInput{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		Kind:            timerdomain.Kind(r.Kind),
		Color:           r.Color,
		Icon:            r.Icon,
	}
}

type updateTimerRequest struct {
	Name            *string `json:"name"`
	DurationMinutes *int    `json:"durationMinutes"`
	Kind            *string `json:"kind"`
	Color           *string `json:"color"`
	Icon            *string `json:"icon"`
}

func (r updateTimerRequest) toPatch() timerdomain.Patch {
	patch := timerdomain.Patch{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		Color:           r.Color,
		Icon:            r.Icon,
	}
	if r.Kind != nil {
		kind := timerdomain.Kind(*r.Kind)
		patch.Kind = &kind
	}
	return patch
}

type sessionPayload struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	TimerID   string        `json:"timerId"`
	StartTime time.Time     `json:"startTime"`
	EndTime   *time.Time    `json:"endTime,omitempty"`
	Completed bool          `json:"completed"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	Timer     *timerPayload `json:"timer,omitempty"`
}

func toSessionPayload(record storage.SessionWithTimer) sessionPayload {
	payload := sessionPayload{
		ID:        record.Session.ID,
		UserID:    record.Session.UserID,
		TimerID:   record.Session.TimerID,
		StartTime: record.Session.StartTime,
		EndTime:   record.Session.EndTime,
		Completed: record.Session.Completed,
		Notes:     record.Session.Notes,
		CreatedAt: record.Session.CreatedAt,
	}
	if record.Timer != nil {
		timer := toTimerPayload(*record.Timer)
		payload.Timer = &timer
	}
	return payload
}

func toSessionPayloads(records []storage.SessionWithTimer) []sessionPayload {
	payloads := make([]sessionPayload, 0, len(records))
	for _, record := range records {
		payloads = append(payloads, toSessionPayload(record))
	}
	return payloads
}

type completeSessionRequest struct {
	Notes *string `json:"notes"`
}

type trackPayload struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	URL             string    `json:"url"`
	DurationSeconds int       `json:"durationSeconds"`
	Artist          string    `json:"artist,omitempty"`
	CoverImage      string    `json:"coverImage,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toTrackPayload(track musicdomain.Track) trackPayload {
	return trackPayload{
		ID:              track.ID,
		Title:           track.Title,
		Category:        string(track.Category),
		URL:             track.URL,
		DurationSeconds: track.DurationSeconds,
		Artist:          track.Artist,
		CoverImage:      track.CoverImage,
		CreatedAt:       track.CreatedAt,
		UpdatedAt:       track.UpdatedAt,
	}
}

func toTrackPayloads(tracks []musicdomain.Track) []trackPayload {
	payloads := make([]trackPayload, 0, len(tracks))
	for _, track := range tracks {
		payloads = append(payloads, toTrackPayload(track))
	}
	return payloads
}

type createTrackRequest struct {
	Title           string `json:"title"`
	Category        string `json:"category"`
	URL             string `json:"url"`
	DurationSeconds int    `json:"durationSeconds"`
	Artist          string `json:"artist"`
	CoverImage      string `json:"coverImage"`
}

func (r createTrackRequest) toInput() musicdomain.CreateTrackInput {
	return musicdomain.CreateTrackInput{
		Title:           r.Title,
		Category:        musicdomain.Category(r.Category),
		URL:             r.URL,
		DurationSeconds: r.DurationSeconds,
		Artist:          r.Artist,
		CoverImage:      r.CoverImage,
	}
}

type updateTrackRequest struct {
	Title           *string `json:"title"`
	Category        *string `json:"category"`
	URL             *string `json:"url"`
	DurationSeconds *int    `json:"durationSeconds"`
	Artist          *string `json:"artist"`
	CoverImage      *string `json:"coverImage"`
}

func (r updateTrackRequest) toPatch() musicdomain.Patch {
	patch := musicdomain.Patch{
		Title:           r.Title,
		URL:             r.URL,
		DurationSeconds: r.DurationSeconds,
		Artist:          r.Artist,
		CoverImage:      r.CoverImage,
	}
	if r.Category != nil {
		category := musicdomain.Category(*r.Category)
		patch.Category = &category
	}
	return patch
}

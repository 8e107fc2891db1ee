package app

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestServerServesLivenessAndRejectsAnonymousAPI(t *testing.T) {
	dbPath := t.TempDir() + "/planner.db"
	t.Setenv("AASHU_DB_PATH", dbPath)
	t.Setenv("AASHU_JWT_SECRET", "test-secret")

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})

	base := "http://" + srv.Addr()

	up, err := http.Get(base + "/up")
	if err != nil {
		t.Fatalf("get /up: %v", err)
	}
	defer up.Body.Close()
	if up.StatusCode != http.StatusOK {
		t.Fatalf("/up status = %d, want 200", up.StatusCode)
	}
	if rid := up.Header.Get("X-Request-ID"); rid == "" {
		t.Fatal("missing request id header")
	}

	tasks, err := http.Get(base + "/api/tasks")
	if err != nil {
		t.Fatalf("get /api/tasks: %v", err)
	}
	defer tasks.Body.Close()
	if tasks.StatusCode != http.StatusUnauthorized {
		t.Fatalf("/api/tasks status = %d, want 401", tasks.StatusCode)
	}
}

func TestNewRequiresJWTSecret(t *testing.T) {
	t.Setenv("AASHU_DB_PATH", t.TempDir()+"/planner.db")
	t.Setenv("AASHU_JWT_SECRET", "")

	if _, err := NewWithAddr("127.0.0.1:0"); err == nil {
		t.Fatal("expected missing secret error")
	}
}

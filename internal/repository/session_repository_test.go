package repository

import (
	"context"
	"testing"
	"time"

	"github.com/senghong-shop/internal/session"
)

func TestMemorySessionRepositoryRoundTrip(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	ctx := context.Background()

	got, err := repo.Get(ctx, "missing")
	if err != nil || got != nil {
		t.Fatalf("missing session should return nil, nil: %+v %v", got, err)
	}

	state := session.New("sid", "clothes", time.Now())
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save session failed: %v", err)
	}
	got, err = repo.Get(ctx, " sid ")
	if err != nil || got == nil || got.ID != "sid" {
		t.Fatalf("get session failed: %+v %v", got, err)
	}

	if err := repo.Delete(ctx, "sid"); err != nil {
		t.Fatalf("delete session failed: %v", err)
	}
	if got, _ := repo.Get(ctx, "sid"); got != nil {
		t.Fatalf("session should be deleted")
	}
}

func TestMemorySessionRepositoryExpires(t *testing.T) {
	repo := NewMemorySessionRepository(time.Minute)
	current := time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return current }
	ctx := context.Background()

	_ = repo.Save(ctx, session.New("a", "clothes", current))
	_ = repo.Save(ctx, session.New("b", "clothes", current))

	current = current.Add(30 * time.Second)
	if got, _ := repo.Get(ctx, "a"); got == nil {
		t.Fatalf("session should still be alive")
	}

	current = current.Add(2 * time.Minute)
	if got, _ := repo.Get(ctx, "a"); got != nil {
		t.Fatalf("session should have expired")
	}
	if removed := repo.Sweep(); removed != 1 {
		t.Fatalf("expected sweep to remove 1 session, got %d", removed)
	}
}

package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type fakeWarmer struct {
	calls int32
}

func (w *fakeWarmer) Warmup(context.Context) {
	atomic.AddInt32(&w.calls, 1)
}

type fakeSweeper struct {
	calls int32
}

func (s *fakeSweeper) Sweep() int {
	atomic.AddInt32(&s.calls, 1)
	return 1
}

type failingService struct {
	stopped int32
}

func (s *failingService) Name() string { return "failing" }

func (s *failingService) Start(context.Context) error { return errors.New("listen failed") }

func (s *failingService) Stop(context.Context) error {
	atomic.AddInt32(&s.stopped, 1)
	return nil
}

func TestBackgroundServiceWarmsAndSweeps(t *testing.T) {
	warmer := &fakeWarmer{}
	sweeper := &fakeSweeper{}
	svc := NewBackgroundService(warmer, sweeper)
	svc.interval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Start(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for atomic.LoadInt32(&sweeper.calls) == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("sweeper was not called")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("background service should exit cleanly, got %v", err)
	}
	if atomic.LoadInt32(&warmer.calls) != 1 {
		t.Fatalf("warmup should run once, got %d", warmer.calls)
	}
}

func TestBackgroundServiceStopWithoutSweeper(t *testing.T) {
	svc := NewBackgroundService(nil, nil)
	done := make(chan error, 1)
	go func() { done <- svc.Start(context.Background()) }()

	if err := svc.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if err := svc.Stop(context.Background()); err != nil {
		t.Fatalf("second stop failed: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("background service did not stop")
	}
}

func TestRunnerStopsAllServicesOnFailure(t *testing.T) {
	failing := &failingService{}
	background := NewBackgroundService(nil, nil)
	runner := NewRunner(failing, background)

	err := runner.Run(context.Background(), time.Second, nil)
	if err == nil || err.Error() != "listen failed" {
		t.Fatalf("expected start error, got %v", err)
	}
	if atomic.LoadInt32(&failing.stopped) != 1 {
		t.Fatalf("failing service should be stopped")
	}
}

func TestBuildRunnerRejectsNilConfig(t *testing.T) {
	if _, err := BuildRunner(nil, ModeAll); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

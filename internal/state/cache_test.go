package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tleaf/barnview/internal/chamber"
)

type fakeAPI struct {
	statusCalls int
	status      chamber.Status
	statusErr   error
}

func (f *fakeAPI) FetchStatus(ctx context.Context) (*chamber.Status, error) {
	f.statusCalls++
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	s := f.status
	return &s, nil
}

func (f *fakeAPI) FetchTrend(ctx context.Context) (*chamber.TrendSeries, error) {
	return nil, nil
}

func (f *fakeAPI) Send(ctx context.Context, cmd chamber.Command, payload any) error {
	return nil
}

func TestCache_OneFetchPerFreshnessWindow(t *testing.T) {
	api := &fakeAPI{status: chamber.Status{Mode: chamber.ModeAuto, Temperature: 30}}
	var store Store
	cache := NewCache(api, &store, time.Minute)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		status, err := cache.Status(ctx)
		if err != nil {
			t.Fatalf("Status returned error: %v", err)
		}
		if status.Temperature != 30 {
			t.Fatalf("Temperature = %v, want 30", status.Temperature)
		}
	}
	if api.statusCalls != 1 {
		t.Fatalf("statusCalls = %d, want 1 within one window", api.statusCalls)
	}
}

func TestCache_StaleTriggersFetch(t *testing.T) {
	api := &fakeAPI{status: chamber.Status{Temperature: 30}}
	var store Store
	cache := NewCache(api, &store, time.Nanosecond)

	ctx := context.Background()
	if _, err := cache.Status(ctx); err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := cache.Status(ctx); err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if api.statusCalls != 2 {
		t.Fatalf("statusCalls = %d, want 2 across expired windows", api.statusCalls)
	}
}

func TestCache_FailureDoesNotOverwrite(t *testing.T) {
	api := &fakeAPI{status: chamber.Status{Temperature: 30}}
	var store Store
	cache := NewCache(api, &store, time.Nanosecond)

	ctx := context.Background()
	if _, err := cache.Status(ctx); err != nil {
		t.Fatalf("seed fetch returned error: %v", err)
	}

	api.statusErr = errors.New("connection refused")
	time.Sleep(time.Millisecond)
	_, err := cache.Status(ctx)
	if err == nil {
		t.Fatal("Status returned nil error, want fetch failure surfaced")
	}

	// The UI still sees the last good values alongside the failure.
	snap := store.Snapshot()
	if !snap.HasStatus || snap.Status.Temperature != 30 {
		t.Fatalf("stored status lost on failure: %#v", snap)
	}
	if snap.LastError == nil {
		t.Fatal("LastError = nil, want recorded failure")
	}
}

func TestCache_RefreshBypassesWindow(t *testing.T) {
	api := &fakeAPI{status: chamber.Status{Temperature: 30}}
	var store Store
	cache := NewCache(api, &store, time.Hour)

	ctx := context.Background()
	if _, err := cache.Status(ctx); err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if _, err := cache.Refresh(ctx); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if api.statusCalls != 2 {
		t.Fatalf("statusCalls = %d, want Refresh to force a second fetch", api.statusCalls)
	}
}

package api

import (
	"testing"
	"time"
)

func TestLoginLimiterSlidingWindow(t *testing.T) {
	limiter := newLoginLimiter(5, 15*time.Minute)
	base := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)

	for attempt := 0; attempt < 5; attempt++ {
		if !limiter.allow("10.0.0.1", base) {
			t.Fatalf("limited after %d failures", attempt)
		}
		limiter.noteFailure("10.0.0.1", base.Add(time.Duration(attempt)*time.Minute))
	}

	if limiter.allow("10.0.0.1", base.Add(5*time.Minute)) {
		t.Fatal("expected limit after 5 failures")
	}
	if !limiter.allow("10.0.0.2", base.Add(5*time.Minute)) {
		t.Fatal("limit leaked across keys")
	}

	// Old failures age out of the window.
	if !limiter.allow("10.0.0.1", base.Add(25*time.Minute)) {
		t.Fatal("expected failures to expire")
	}
}

func TestLoginLimiterClearOnSuccess(t *testing.T) {
	limiter := newLoginLimiter(5, 15*time.Minute)
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)

	for attempt := 0; attempt < 5; attempt++ {
		limiter.noteFailure("10.0.0.1", now)
	}
	if limiter.allow("10.0.0.1", now) {
		t.Fatal("expected limit")
	}

	limiter.clear("10.0.0.1")
	if !limiter.allow("10.0.0.1", now) {
		t.Fatal("clear should forget failures")
	}
}

func TestLoginLimiterRespectsConfiguredLimit(t *testing.T) {
	limiter := newLoginLimiter(2, time.Hour)
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)

	limiter.noteFailure("10.0.0.1", now)
	if !limiter.allow("10.0.0.1", now) {
		t.Fatal("one failure must not trip a limit of two")
	}
	limiter.noteFailure("10.0.0.1", now)
	if limiter.allow("10.0.0.1", now) {
		t.Fatal("two failures must trip a limit of two")
	}
}

package llmclient

import (
	"context"
	"errors"
	"testing"
)

func TestCachedClientServesRepeatsFromCache(t *testing.T) {
	fake := &FakeClient{Responses: []string{"first", "second"}}
	cached, err := NewCachedClient(fake, 8)
	if err != nil {
		t.Fatal(err)
	}
	msgs := []Message{{Role: "system", Content: "hello"}}

	got, err := cached.ChatCompletion(context.Background(), msgs, 100)
	if err != nil || got != "first" {
		t.Fatalf("first call: %q, %v", got, err)
	}
	got, err = cached.ChatCompletion(context.Background(), msgs, 100)
	if err != nil || got != "first" {
		t.Fatalf("second call: %q, %v", got, err)
	}
	if fake.Calls != 1 {
		t.Fatalf("backend called %d times, want 1", fake.Calls)
	}
}

func TestCachedClientDistinguishesTokenBound(t *testing.T) {
	fake := &FakeClient{Responses: []string{"a", "b"}}
	cached, _ := NewCachedClient(fake, 8)
	msgs := []Message{{Role: "user", Content: "x"}}

	_, _ = cached.ChatCompletion(context.Background(), msgs, 100)
	_, _ = cached.ChatCompletion(context.Background(), msgs, 200)
	if fake.Calls != 2 {
		t.Fatalf("backend called %d times, want 2", fake.Calls)
	}
}

func TestCachedClientDoesNotCacheFailures(t *testing.T) {
	fake := &FakeClient{Err: errors.New("boom")}
	cached, _ := NewCachedClient(fake, 8)
	msgs := []Message{{Role: "user", Content: "x"}}

	if _, err := cached.ChatCompletion(context.Background(), msgs, 1); err == nil {
		t.Fatal("expected error")
	}
	if _, err := cached.ChatCompletion(context.Background(), msgs, 1); err == nil {
		t.Fatal("expected error on retry")
	}
	if fake.Calls != 2 {
		t.Fatalf("backend called %d times, want 2", fake.Calls)
	}
}

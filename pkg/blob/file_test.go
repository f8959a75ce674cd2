package blob

import (
	"context"
	"testing"
	"time"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := s.GetBytes(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}

	want := []byte(`{"a":[1,2,3]}`)
	if err := s.SetBytes(ctx, "payload", want); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := s.GetBytes(ctx, "payload")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(got) != string(want) {
		t.Fatalf("got %s", got)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	if err := s.SetBytes(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetBytes(ctx, "k", []byte("two")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _, _ := s.GetBytes(ctx, "k")
	if string(got) != "two" {
		t.Fatalf("got %s", got)
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	c := NewTTLCache()
	c.Set("k", []byte("v"), 10*time.Millisecond)
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected hit")
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected expiry")
	}
}

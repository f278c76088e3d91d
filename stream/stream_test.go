package stream

import (
	"testing"
	"time"
)

func TestPullOrder(t *testing.T) {
	s := NewStream[int]("test")
	if s.Name() != "test" {
		t.Errorf("unexpected name %q", s.Name())
	}
	for i := 0; i < 5; i++ {
		s.Push(i)
	}
	if s.Len() != 5 {
		t.Fatalf("expected 5 elements, got %d", s.Len())
	}
	for i := 0; i < 5; i++ {
		if got := s.Pull(); got != i {
			t.Errorf("expected %d, got %d", i, got)
		}
	}
}

func TestTryPullEmpty(t *testing.T) {
	s := NewStream[string]("test")
	if msg, ok := s.TryPull(); ok || msg != "" {
		t.Errorf("expected empty pull, got %q %v", msg, ok)
	}
	s.Push("a")
	if msg, ok := s.TryPull(); !ok || msg != "a" {
		t.Errorf("expected \"a\", got %q %v", msg, ok)
	}
	if _, ok := s.TryPull(); ok {
		t.Error("expected stream to be drained")
	}
}

func TestPullWaitsForPush(t *testing.T) {
	s := NewStream[int]("test")
	done := make(chan int)
	go func() {
		done <- s.Pull()
	}()

	select {
	case <-done:
		t.Fatal("Pull returned before Push")
	case <-time.After(20 * time.Millisecond):
	}

	s.Push(42)
	select {
	case got := <-done:
		if got != 42 {
			t.Errorf("expected 42, got %d", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Pull did not wake up")
	}
}

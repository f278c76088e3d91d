package stream

import (
	"sync"
)

// Stream is an unbounded FIFO queue shared between one producer goroutine and one consumer.
type Stream[T any] struct {
	name     string
	elements []T
	*sync.Cond
}

func NewStream[T any](name string) *Stream[T] {
	return &Stream[T]{
		Cond: sync.NewCond(&sync.Mutex{}),
		name: name,
	}
}

func (s *Stream[T]) Name() string {
	return s.name
}

func (s *Stream[T]) Push(msg T) {
	s.Cond.L.Lock()
	s.elements = append(s.elements, msg)
	s.Cond.Signal()
	s.Cond.L.Unlock()
}

// Pull blocks until an element is available.
func (s *Stream[T]) Pull() T {
	s.Cond.L.Lock()
	for len(s.elements) == 0 {
		s.Cond.Wait()
	}
	msg := s.elements[0]
	s.elements = s.elements[1:]
	s.Cond.L.Unlock()
	return msg
}

// TryPull returns the oldest element without waiting. ok is false if the stream is empty.
func (s *Stream[T]) TryPull() (msg T, ok bool) {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	if len(s.elements) == 0 {
		return msg, false
	}
	msg = s.elements[0]
	s.elements = s.elements[1:]
	return msg, true
}

func (s *Stream[T]) Len() int {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	return len(s.elements)
}

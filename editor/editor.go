// Package editor implements the single-line command buffer fed by classified keystrokes.
package editor

import (
	"jinx/device"
)

// Dispatch receives a submitted line.
type Dispatch func(line string) error

// Editor accumulates printable characters until a line is submitted.
// The buffer has no length limit.
type Editor struct {
	buffer []rune
}

func New() *Editor {
	return &Editor{}
}

// Feed applies one keystroke. On Submit the whole line is passed to dispatch and the
// buffer is cleared whatever dispatch returns; dispatch's error is returned as is.
func (e *Editor) Feed(key device.Keystroke, dispatch Dispatch) error {
	switch key.Kind {
	case device.PrintableChar:
		e.buffer = append(e.buffer, key.Rune)

	case device.Erase:
		if len(e.buffer) > 0 {
			e.buffer = e.buffer[:len(e.buffer)-1]
		}

	case device.Submit:
		line := string(e.buffer)
		defer e.Reset()
		if dispatch != nil {
			return dispatch(line)
		}
	}
	return nil
}

func (e *Editor) String() string {
	return string(e.buffer)
}

func (e *Editor) Len() int {
	return len(e.buffer)
}

func (e *Editor) Empty() bool {
	return len(e.buffer) == 0
}

func (e *Editor) Reset() {
	e.buffer = e.buffer[:0]
}

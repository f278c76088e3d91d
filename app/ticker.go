package app

import "time"

type frameStats struct {
	prevTick time.Time
	frames   int
	fps      int
}

func (s *frameStats) reset(now time.Time) {
	s.prevTick = now
	s.frames = 0
	s.fps = 0
}

func (s *frameStats) frame(now time.Time) {
	s.frames++
	dur := now.Sub(s.prevTick)
	if dur < time.Second {
		return
	}
	s.fps = int(float64(s.frames) / dur.Seconds())
	s.prevTick = now
	s.frames = 0
}

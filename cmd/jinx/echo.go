package main

import (
	"fmt"
	"strings"
	"time"

	"jinx/app"
	"jinx/device"
)

const title = " jinx "

// echo is the demo application: it echoes commands into the display and shows the frame rate.
type echo struct {
	last    string
	lastErr bool
	alert   string
	ticks   int
	elapsed time.Duration
}

func newEcho() *echo {
	return &echo{}
}

func (e *echo) Tick(c *app.Console, dt time.Duration) error {
	e.ticks++
	e.elapsed += dt

	display := c.Display()
	display.Clear()
	c.Layout().DrawBorder()
	c.TopMessage(title, device.PairCyanOnBlack)

	if e.last != "" {
		pair := device.PairDefault
		if e.lastErr {
			pair = device.PairRedOnBlack
		}
		display.Text(device.Position{X: 2, Y: 2}, e.last, pair)
	}

	if e.alert != "" {
		c.AlertMessage(" "+e.alert+" ", device.PairBlackOnRed)
	} else if c.Config().Polling() {
		c.AlertMessage(fmt.Sprintf(" %d fps ", c.FPS()), device.PairRedOnBlack)
	} else {
		c.AlertMessage(fmt.Sprintf(" tick %d ", e.ticks), device.PairRedOnBlack)
	}
	return nil
}

func (e *echo) OnCommand(c *app.Console, line string) error {
	name, arg, _ := strings.Cut(line, " ")
	switch {
	case line == app.QuitCommand:
		c.Stop()
	case line == "clear":
		e.last, e.lastErr, e.alert = "", false, ""
	case name == "echo":
		e.last, e.lastErr = arg, false
	case name == "alert":
		e.alert = arg
	case line == "":
	default:
		e.last, e.lastErr = "unknown command: "+line, true
	}
	return nil
}

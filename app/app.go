// Package app runs the console loop: it ticks the application logic, reads keystrokes into
// the command line editor, dispatches submitted lines and keeps the prompt up to date.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"jinx/device"
	"jinx/editor"
	"jinx/layout"
	"jinx/lifecycle"
)

// Config is fixed once the loop starts. A zero TickInterval selects blocking mode:
// the loop advances once per keystroke. A positive TickInterval selects polling mode.
type Config struct {
	TickInterval time.Duration
}

func (c Config) Polling() bool {
	return c.TickInterval > 0
}

func (c Config) String() string {
	if c.Polling() {
		return fmt.Sprintf("polling every %v", c.TickInterval)
	}
	return "blocking"
}

// Logic is the application plugged into the loop.
type Logic interface {
	// Tick runs once per loop iteration with the time elapsed since the previous one.
	Tick(c *Console, dt time.Duration) error
	// OnCommand receives each submitted command line.
	OnCommand(c *Console, line string) error
}

type Console struct {
	config Config
	dev    device.Device
	layout *layout.Layout
	editor *editor.Editor
	lc     *lifecycle.Lifecycle
	now    func() time.Time
	sleep  func(time.Duration)
	last   time.Time
	stats  frameStats
}

type Option func(*Console)

// WithClock replaces the monotonic clock and the sleep used between polling iterations.
func WithClock(now func() time.Time, sleep func(time.Duration)) Option {
	return func(c *Console) {
		c.now = now
		c.sleep = sleep
	}
}

// Run acquires the terminal with open and loops until the logic stops the console or ctx
// is cancelled. The terminal is restored before Run returns, whatever the exit path.
func Run(ctx context.Context, open device.Opener, logic Logic, config Config, opts ...Option) (err error) {
	if logic == nil {
		logic = DefaultLogic{}
	}

	dev, err := open()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	c := &Console{
		config: config,
		dev:    dev,
		editor: editor.New(),
		lc:     lifecycle.New(ctx),
		now:    time.Now,
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}

	defer func() {
		c.lc.Stop()
		if closeErr := dev.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close terminal: %w", closeErr)
		}
	}()

	c.start()

	for !c.lc.ShouldStop() {
		if err := c.iterate(logic); err != nil {
			log.Printf("console stopped: %v", err)
			return err
		}
	}
	return nil
}

func (c *Console) start() {
	c.layout = layout.New(c.dev)
	c.layout.DrawBorder()
	c.layout.DrawPrompt("")
	c.layout.Show()
	c.dev.SetBlocking(!c.config.Polling())

	c.last = c.now()
	c.stats.reset(c.last)

	c.lc.Started()
	go c.watch()

	log.Printf("console started: %v, display %v, command %v",
		c.config, c.layout.DisplayRect().Size, c.layout.CommandRect().Size)
}

// watch wakes up a blocked read once the console is asked to stop.
func (c *Console) watch() {
	defer c.lc.Done()
	<-c.lc.Stopping()
	c.dev.Interrupt()
}

func (c *Console) iterate(logic Logic) error {
	now := c.now()
	dt := now.Sub(c.last)
	c.last = now
	c.stats.frame(now)

	if err := logic.Tick(c, dt); err != nil {
		return fmt.Errorf("tick: %w", err)
	}

	key := c.dev.ReadKey()
	if key.Kind != device.NoInput {
		err := c.editor.Feed(key, func(line string) error {
			log.Printf("command: %q", line)
			if err := logic.OnCommand(c, line); err != nil {
				return fmt.Errorf("command %q: %w", line, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	c.layout.DrawPrompt(c.editor.String())

	if c.config.Polling() {
		c.sleep(c.config.TickInterval)
	}
	return nil
}

// Stop asks the loop to exit. The current iteration completes first.
func (c *Console) Stop() {
	c.lc.Cancel()
}

func (c *Console) Running() bool {
	return !c.lc.ShouldStop()
}

func (c *Console) Config() Config {
	return c.config
}

func (c *Console) Layout() *layout.Layout {
	return c.layout
}

func (c *Console) Display() device.Region {
	return c.layout.Display()
}

// Input returns the command line being typed.
func (c *Console) Input() string {
	return c.editor.String()
}

func (c *Console) AlertMessage(text string, pair device.ColorPair) {
	c.layout.AlertMessage(text, pair)
}

func (c *Console) TopMessage(text string, pair device.ColorPair) {
	c.layout.TopMessage(text, pair)
}

// FPS returns the loop iterations per second measured over the last full second.
func (c *Console) FPS() int {
	return c.stats.fps
}

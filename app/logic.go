package app

import "time"

const QuitCommand = "quit"

// DefaultLogic does nothing on tick and stops the console on the exact command "quit".
type DefaultLogic struct{}

func (DefaultLogic) Tick(*Console, time.Duration) error {
	return nil
}

func (DefaultLogic) OnCommand(c *Console, line string) error {
	if line == QuitCommand {
		c.Stop()
	}
	return nil
}

// Funcs adapts plain functions to Logic. Nil members behave like DefaultLogic.
type Funcs struct {
	TickFunc    func(c *Console, dt time.Duration) error
	CommandFunc func(c *Console, line string) error
}

func (f Funcs) Tick(c *Console, dt time.Duration) error {
	if f.TickFunc == nil {
		return DefaultLogic{}.Tick(c, dt)
	}
	return f.TickFunc(c, dt)
}

func (f Funcs) OnCommand(c *Console, line string) error {
	if f.CommandFunc == nil {
		return DefaultLogic{}.OnCommand(c, line)
	}
	return f.CommandFunc(c, line)
}

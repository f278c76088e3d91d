// Package layout splits the terminal into the display region and the two-row command region.
package layout

import (
	"unicode/utf8"

	"jinx/device"
)

const (
	CommandRows = 2
	Prompt      = " > "
)

type Layout struct {
	display     device.Region
	command     device.Region
	displayRect device.Rect
	commandRect device.Rect
}

// Compute splits a rows x cols terminal. The command region takes the bottom rows,
// the display region everything above it.
func Compute(rows, cols int) (display, command device.Rect) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	commandRows := min(CommandRows, rows)
	displayRows := rows - commandRows
	display = device.Rect{
		Position: device.Position{X: 0, Y: 0},
		Size:     device.Size{Width: cols, Height: displayRows},
	}
	command = device.Rect{
		Position: device.Position{X: 0, Y: displayRows},
		Size:     device.Size{Width: cols, Height: commandRows},
	}
	return display, command
}

// New queries the terminal size once; later resizes are not followed.
func New(dev device.Device) *Layout {
	size := dev.Size()
	displayRect, commandRect := Compute(size.Height, size.Width)
	return &Layout{
		display:     dev.Region(displayRect),
		command:     dev.Region(commandRect),
		displayRect: displayRect,
		commandRect: commandRect,
	}
}

func (l *Layout) Display() device.Region {
	return l.display
}

func (l *Layout) Command() device.Region {
	return l.command
}

func (l *Layout) DisplayRect() device.Rect {
	return l.displayRect
}

func (l *Layout) CommandRect() device.Rect {
	return l.commandRect
}

func (l *Layout) DrawBorder() {
	l.display.Border()
}

// CenterColumn returns the column where text starts when centered on cols columns.
// Text is measured in characters, not cells. Both halves are truncated, so the result
// may be negative for text longer than the region.
func CenterColumn(cols int, text string) int {
	return cols/2 - utf8.RuneCountInString(text)/2
}

// WriteMessage centers text on the given row of region. Cells falling outside
// the region are clipped by the region.
func (l *Layout) WriteMessage(region device.Region, row int, text string, pair device.ColorPair) {
	col := CenterColumn(region.Size().Width, text)
	region.Text(device.Position{X: col, Y: row}, text, pair)
}

// AlertMessage writes on the bottom row of the display, over the border.
func (l *Layout) AlertMessage(text string, pair device.ColorPair) {
	l.WriteMessage(l.display, l.display.Size().Height-1, text, pair)
}

// TopMessage writes on the top row of the display, over the border.
func (l *Layout) TopMessage(text string, pair device.ColorPair) {
	l.WriteMessage(l.display, 0, text, pair)
}

func (l *Layout) DrawPrompt(input string) {
	l.command.Clear()
	l.command.Text(device.Position{}, Prompt+input, device.PairDefault)
	l.command.Show()
}

func (l *Layout) Show() {
	l.display.Show()
	l.command.Show()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

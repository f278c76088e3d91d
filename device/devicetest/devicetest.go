// Package devicetest provides an in-memory device.Device for tests.
package devicetest

import (
	"strings"
	"sync"

	"jinx/device"
)

type Cell struct {
	Rune rune
	Pair device.ColorPair
}

// Device is a scripted terminal. Keys are returned by ReadKey in order; once the script
// is exhausted ReadKey returns NoInput in either read mode.
type Device struct {
	mu         sync.Mutex
	size       device.Size
	cells      [][]Cell
	keys       []device.Keystroke
	blocking   bool
	closed     int
	shows      int
	reads      int
	interrupts int
	regions    []device.Rect
	closeErr   error
}

func New(width, height int) *Device {
	d := &Device{size: device.Size{Width: width, Height: height}, blocking: true}
	d.cells = make([][]Cell, height)
	for y := range d.cells {
		d.cells[y] = make([]Cell, width)
		for x := range d.cells[y] {
			d.cells[y][x] = Cell{Rune: ' '}
		}
	}
	return d
}

// Opener returns an opener handing out d.
func (d *Device) Opener() device.Opener {
	return func() (device.Device, error) {
		return d, nil
	}
}

func (d *Device) Type(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range text {
		d.keys = append(d.keys, device.Classify(r))
	}
}

func (d *Device) Key(keys ...device.Keystroke) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keys = append(d.keys, keys...)
}

func (d *Device) FailClose(err error) {
	d.closeErr = err
}

func (d *Device) Size() device.Size {
	return d.size
}

func (d *Device) Region(rect device.Rect) device.Region {
	d.mu.Lock()
	d.regions = append(d.regions, rect)
	d.mu.Unlock()
	return &region{device: d, rect: rect}
}

func (d *Device) SetBlocking(blocking bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.blocking = blocking
}

func (d *Device) ReadKey() device.Keystroke {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reads++
	if len(d.keys) == 0 {
		return device.Keystroke{Kind: device.NoInput}
	}
	key := d.keys[0]
	d.keys = d.keys[1:]
	return key
}

func (d *Device) Interrupt() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.interrupts++
}

func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed++
	return d.closeErr
}

func (d *Device) Blocking() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.blocking
}

func (d *Device) Closed() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

func (d *Device) Reads() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reads
}

func (d *Device) Shows() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shows
}

func (d *Device) Interrupts() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.interrupts
}

func (d *Device) Regions() []device.Rect {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]device.Rect(nil), d.regions...)
}

func (d *Device) Cell(x, y int) Cell {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cells[y][x]
}

// Line returns row y of the screen with trailing blanks removed.
func (d *Device) Line(y int) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	b := strings.Builder{}
	for _, cell := range d.cells[y] {
		b.WriteRune(cell.Rune)
	}
	return strings.TrimRight(b.String(), " ")
}

func (d *Device) set(x, y int, r rune, pair device.ColorPair) {
	if y < 0 || y >= d.size.Height || x < 0 || x >= d.size.Width {
		return
	}
	d.cells[y][x] = Cell{Rune: r, Pair: pair}
}

type region struct {
	device *Device
	rect   device.Rect
}

func (r *region) Size() device.Size {
	return r.rect.Size
}

func (r *region) Text(pos device.Position, text string, pair device.ColorPair) {
	r.device.mu.Lock()
	defer r.device.mu.Unlock()
	x := pos.X
	for _, ch := range text {
		r.setLocal(x, pos.Y, ch, pair)
		x++
	}
}

func (r *region) Clear() {
	r.device.mu.Lock()
	defer r.device.mu.Unlock()
	for y := 0; y < r.rect.Height; y++ {
		for x := 0; x < r.rect.Width; x++ {
			r.setLocal(x, y, ' ', device.PairDefault)
		}
	}
}

func (r *region) Border() {
	r.device.mu.Lock()
	defer r.device.mu.Unlock()
	w, h := r.rect.Width, r.rect.Height
	if w < 2 || h < 2 {
		return
	}
	for x := 1; x < w-1; x++ {
		r.setLocal(x, 0, '-', device.PairDefault)
		r.setLocal(x, h-1, '-', device.PairDefault)
	}
	for y := 1; y < h-1; y++ {
		r.setLocal(0, y, '|', device.PairDefault)
		r.setLocal(w-1, y, '|', device.PairDefault)
	}
	r.setLocal(0, 0, '+', device.PairDefault)
	r.setLocal(w-1, 0, '+', device.PairDefault)
	r.setLocal(0, h-1, '+', device.PairDefault)
	r.setLocal(w-1, h-1, '+', device.PairDefault)
}

func (r *region) Show() {
	r.device.mu.Lock()
	defer r.device.mu.Unlock()
	r.device.shows++
}

func (r *region) setLocal(x, y int, ch rune, pair device.ColorPair) {
	if x < 0 || y < 0 || x >= r.rect.Width || y >= r.rect.Height {
		return
	}
	r.device.set(r.rect.X+x, r.rect.Y+y, ch, pair)
}

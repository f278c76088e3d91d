package tcell

import (
	"context"
	"log"
	"os"
	"sync"

	"jinx/device"
	"jinx/lifecycle"
	"jinx/stream"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/views"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

type tcellDevice struct {
	screen    tcell.Screen
	keys      *stream.Stream[device.Keystroke]
	lc        *lifecycle.Lifecycle
	mu        sync.Mutex
	blocking  bool
	restore   func()
	closeOnce sync.Once
}

// NewDevice takes over the controlling terminal. It matches device.Opener.
func NewDevice() (device.Device, error) {
	output := termenv.NewOutput(os.Stdout)
	fg := output.ForegroundColor()
	bg := output.BackgroundColor()

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	d := newDevice(screen)
	d.restore = func() {
		output.SetForegroundColor(fg)
		output.SetBackgroundColor(bg)
	}
	return d, nil
}

// newDevice wraps an initialized screen and starts pumping its key events.
func newDevice(screen tcell.Screen) *tcellDevice {
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	d := &tcellDevice{
		screen:   screen,
		keys:     stream.NewStream[device.Keystroke]("keys"),
		lc:       lifecycle.New(context.Background()),
		blocking: true,
	}

	d.lc.Started()
	go d.pump()

	return d
}

func (d *tcellDevice) pump() {
	defer d.lc.Done()
	for {
		event := d.screen.PollEvent()
		if event == nil {
			return
		}
		switch ev := event.(type) {
		case *tcell.EventKey:
			key := keystroke(ev)
			log.Printf("key: %v", key.Kind)
			d.keys.Push(key)

		case *tcell.EventResize:
			d.screen.Sync()
			w, h := ev.Size()
			log.Printf("resize: cols=%d lines=%d", w, h)
		}
	}
}

func (d *tcellDevice) Size() device.Size {
	w, h := d.screen.Size()
	return device.Size{Width: w, Height: h}
}

func (d *tcellDevice) Region(rect device.Rect) device.Region {
	return &tcellRegion{
		screen: d.screen,
		view:   views.NewViewPort(d.screen, rect.X, rect.Y, rect.Width, rect.Height),
		size:   rect.Size,
	}
}

func (d *tcellDevice) SetBlocking(blocking bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.blocking = blocking
}

func (d *tcellDevice) ReadKey() device.Keystroke {
	d.mu.Lock()
	blocking := d.blocking
	d.mu.Unlock()

	if blocking {
		return d.keys.Pull()
	}
	if key, ok := d.keys.TryPull(); ok {
		return key
	}
	return device.Keystroke{Kind: device.NoInput}
}

// Interrupt makes a pending or the next blocking ReadKey return NoInput.
func (d *tcellDevice) Interrupt() {
	d.keys.Push(device.Keystroke{Kind: device.NoInput})
}

func (d *tcellDevice) Close() error {
	d.closeOnce.Do(func() {
		d.lc.Cancel()
		d.screen.Fini()
		d.lc.Wait()
		log.Printf("%s: closed, %d pending", d.keys.Name(), d.keys.Len())
		if d.restore != nil {
			d.restore()
		}
	})
	return nil
}

type tcellRegion struct {
	screen tcell.Screen
	view   *views.ViewPort
	size   device.Size
}

func (r *tcellRegion) Size() device.Size {
	return r.size
}

func (r *tcellRegion) Text(pos device.Position, text string, pair device.ColorPair) {
	style := styleOf(pair)
	x := pos.X
	for _, ch := range text {
		r.view.SetContent(x, pos.Y, ch, nil, style)
		width := runewidth.RuneWidth(ch)
		if width < 1 {
			width = 1
		}
		x += width
	}
}

func (r *tcellRegion) Clear() {
	r.view.Fill(' ', tcell.StyleDefault)
}

func (r *tcellRegion) Border() {
	w, h := r.size.Width, r.size.Height
	if w < 2 || h < 2 {
		return
	}
	style := tcell.StyleDefault
	for x := 1; x < w-1; x++ {
		r.view.SetContent(x, 0, tcell.RuneHLine, nil, style)
		r.view.SetContent(x, h-1, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < h-1; y++ {
		r.view.SetContent(0, y, tcell.RuneVLine, nil, style)
		r.view.SetContent(w-1, y, tcell.RuneVLine, nil, style)
	}
	r.view.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	r.view.SetContent(w-1, 0, tcell.RuneURCorner, nil, style)
	r.view.SetContent(0, h-1, tcell.RuneLLCorner, nil, style)
	r.view.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, style)
}

func (r *tcellRegion) Show() {
	r.screen.Show()
}

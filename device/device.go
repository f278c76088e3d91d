package device

// Device is the terminal surface. Opening a device switches the terminal to raw,
// unechoed input with special key decoding. Close restores it.
type Device interface {
	Size() Size
	Region(rect Rect) Region
	SetBlocking(blocking bool)
	ReadKey() Keystroke
	Interrupt()
	Close() error
}

// Opener acquires the terminal.
type Opener func() (Device, error)

type Region interface {
	Size() Size
	Text(pos Position, text string, pair ColorPair)
	Clear()
	Border()
	Show()
}

type Position struct {
	X int
	Y int
}

type Size struct {
	Width  int
	Height int
}

type Rect struct {
	Position
	Size
}

// ColorPair selects one of the predefined foreground/background pairs.
type ColorPair byte

const (
	PairDefault ColorPair = iota
	PairBlackOnRed
	PairRedOnBlack
	PairCyanOnBlack
)

// ANSI palette slots, numbered the way curses numbers its colors.
const (
	ColorBlack = 0
	ColorRed   = 1
	ColorCyan  = 6
)

// Colors returns the palette slots of the pair. ok is false for PairDefault and unknown pairs.
func (p ColorPair) Colors() (fg, bg int, ok bool) {
	switch p {
	case PairBlackOnRed:
		return ColorBlack, ColorRed, true
	case PairRedOnBlack:
		return ColorRed, ColorBlack, true
	case PairCyanOnBlack:
		return ColorCyan, ColorBlack, true
	}
	return 0, 0, false
}

func (p ColorPair) String() string {
	switch p {
	case PairDefault:
		return "default"
	case PairBlackOnRed:
		return "black-on-red"
	case PairRedOnBlack:
		return "red-on-black"
	case PairCyanOnBlack:
		return "cyan-on-black"
	}
	return "unknown"
}

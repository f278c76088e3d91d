package device

import (
	"fmt"
	"unicode"
)

type KeyKind int

const (
	NoInput KeyKind = iota
	PrintableChar
	Submit
	Erase
	Other
)

func (k KeyKind) String() string {
	switch k {
	case NoInput:
		return "NoInput"
	case PrintableChar:
		return "PrintableChar"
	case Submit:
		return "Submit"
	case Erase:
		return "Erase"
	case Other:
		return "Other"
	}
	return fmt.Sprintf("KeyKind(%d)", int(k))
}

// Keystroke is one classified unit of terminal input. Rune is set for PrintableChar only.
type Keystroke struct {
	Kind KeyKind
	Rune rune
}

func (k Keystroke) String() string {
	if k.Kind == PrintableChar {
		return fmt.Sprintf("PrintableChar(%q)", k.Rune)
	}
	return k.Kind.String()
}

const (
	keyBackspace = 0x08
	keyDelete    = 0x7f
)

// Classify maps a raw character code to a keystroke.
// Line feed and carriage return submit, backspace and DEL erase.
func Classify(r rune) Keystroke {
	switch {
	case r == '\n' || r == '\r':
		return Keystroke{Kind: Submit}
	case r == keyBackspace || r == keyDelete:
		return Keystroke{Kind: Erase}
	case unicode.IsPrint(r):
		return Keystroke{Kind: PrintableChar, Rune: r}
	}
	return Keystroke{Kind: Other}
}

func Printable(r rune) Keystroke {
	return Keystroke{Kind: PrintableChar, Rune: r}
}

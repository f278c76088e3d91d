package tcell

import (
	"jinx/device"

	"github.com/gdamore/tcell/v2"
)

func styleOf(pair device.ColorPair) tcell.Style {
	fg, bg, ok := pair.Colors()
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(fg)).
		Background(tcell.PaletteColor(bg))
}

// keystroke classifies a decoded key. Control keys carry their ASCII code,
// named keys (arrows, function keys) are Other.
func keystroke(ev *tcell.EventKey) device.Keystroke {
	switch {
	case ev.Key() == tcell.KeyRune:
		return device.Classify(ev.Rune())
	case ev.Key() < tcell.KeyRune:
		return device.Classify(rune(ev.Key()))
	}
	return device.Keystroke{Kind: device.Other}
}

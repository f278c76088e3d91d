package layout

import (
	"testing"

	"jinx/device"
	"jinx/device/devicetest"
)

func TestCompute(t *testing.T) {
	for rows := 0; rows <= 30; rows++ {
		display, command := Compute(rows, 80)
		if display.Height+command.Height != rows {
			t.Errorf("rows=%d: display %d + command %d", rows, display.Height, command.Height)
		}
		if rows >= 2 && command.Height != 2 {
			t.Errorf("rows=%d: expected 2 command rows, got %d", rows, command.Height)
		}
		if command.Y != display.Height || display.Y != 0 {
			t.Errorf("rows=%d: unexpected origins %v %v", rows, display, command)
		}
		if display.Width != 80 || command.Width != 80 {
			t.Errorf("rows=%d: expected full width", rows)
		}
	}
}

func TestCenterColumn(t *testing.T) {
	tests := []struct {
		cols int
		text string
		want int
	}{
		{21, "abcd", 8},
		{80, "", 40},
		{80, "abc", 39},
		{10, "a very long message", -4},
		{4, "a very long message", -7},
		{20, "日本", 9},
		{21, "日本", 9},
		{21, "e\u0301", 9},
	}
	for _, test := range tests {
		if got := CenterColumn(test.cols, test.text); got != test.want {
			t.Errorf("CenterColumn(%d, %q) = %d, want %d", test.cols, test.text, got, test.want)
		}
	}
}

func TestNewBuildsRegions(t *testing.T) {
	dev := devicetest.New(40, 12)
	l := New(dev)
	regions := dev.Regions()
	if len(regions) != 2 {
		t.Fatalf("expected two regions, got %d", len(regions))
	}
	if regions[0] != l.DisplayRect() || regions[1] != l.CommandRect() {
		t.Errorf("unexpected regions %v", regions)
	}
	if l.Command().Size() != l.CommandRect().Size || l.Display().Size() != l.DisplayRect().Size {
		t.Errorf("region sizes do not match their rectangles")
	}
	if l.CommandRect().Y != 10 || l.DisplayRect().Height != 10 {
		t.Errorf("unexpected split %v %v", l.DisplayRect(), l.CommandRect())
	}
}

func TestMessages(t *testing.T) {
	dev := devicetest.New(21, 8)
	l := New(dev)
	l.DrawBorder()
	l.TopMessage("abcd", device.PairCyanOnBlack)
	l.AlertMessage("wxyz", device.PairBlackOnRed)

	if line := dev.Line(0); line != "+-------abcd--------+" {
		t.Errorf("unexpected top line %q", line)
	}
	if line := dev.Line(5); line != "+-------wxyz--------+" {
		t.Errorf("unexpected bottom line %q", line)
	}
	if cell := dev.Cell(8, 0); cell.Rune != 'a' || cell.Pair != device.PairCyanOnBlack {
		t.Errorf("unexpected cell %+v", cell)
	}
	if cell := dev.Cell(8, 5); cell.Rune != 'w' || cell.Pair != device.PairBlackOnRed {
		t.Errorf("unexpected cell %+v", cell)
	}
	if line := dev.Line(6); line != "" {
		t.Errorf("message leaked into the command region: %q", line)
	}
}

func TestWriteMessageClipsOverflow(t *testing.T) {
	dev := devicetest.New(6, 4)
	l := New(dev)
	l.TopMessage("0123456789", device.PairDefault)
	if line := dev.Line(0); line != "234567" {
		t.Errorf("unexpected clipped line %q", line)
	}
}

func TestDrawPrompt(t *testing.T) {
	dev := devicetest.New(20, 6)
	l := New(dev)
	l.DrawPrompt("hello")
	if line := dev.Line(4); line != " > hello" {
		t.Errorf("unexpected prompt %q", line)
	}
	l.DrawPrompt("")
	if line := dev.Line(4); line != " >" {
		t.Errorf("prompt not cleared: %q", line)
	}
	if dev.Shows() != 2 {
		t.Errorf("expected 2 flushes, got %d", dev.Shows())
	}
}

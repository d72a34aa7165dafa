package matchfmt

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type StyleFunc func(a ...any) string

// The semantic styles used in failure messages. Values on the expected side of
// a comparison are rendered with Expected, values on the received side with
// Received. Dim is for the punctuation around them.
type Palette struct {
	Expected StyleFunc
	Received StyleFunc
	Dim      StyleFunc
}

// Green for expected, red for received. Output is left uncolored whenever
// [color.NoColor] is set, which fatih/color does for NO_COLOR and non-terminals.
func DefaultPalette() Palette {
	return Palette{
		Expected: color.New(color.FgGreen).SprintFunc(),
		Received: color.New(color.FgRed).SprintFunc(),
		Dim:      color.New(color.Faint).SprintFunc(),
	}
}

// A palette that applies no styling at all.
func PlainPalette() Palette {
	return Palette{Expected: plain, Received: plain, Dim: plain}
}

// Returns [DefaultPalette] if [f] is a terminal, otherwise [PlainPalette].
func AutoPalette(f *os.File) Palette {
	if f != nil && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return DefaultPalette()
	}
	return PlainPalette()
}

func plain(a ...any) string {
	return fmt.Sprint(a...)
}

// fills in any style left nil with a pass-through.
func (p Palette) complete() Palette {
	if p.Expected == nil {
		p.Expected = plain
	}
	if p.Received == nil {
		p.Received = plain
	}
	if p.Dim == nil {
		p.Dim = plain
	}
	return p
}

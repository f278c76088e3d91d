package main

import (
	"fmt"
	"strings"

	"jinx/device"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const swatchWidth = 18

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Show the color pairs available to console messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := lipgloss.NewRenderer(cmd.OutOrStdout())
			renderer.SetColorProfile(termenv.EnvColorProfile())
			for _, line := range paletteLines(renderer) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func paletteLines(renderer *lipgloss.Renderer) []string {
	pairs := []device.ColorPair{device.PairDefault, device.PairBlackOnRed, device.PairRedOnBlack, device.PairCyanOnBlack}
	titler := cases.Title(language.English)
	lines := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		style := renderer.NewStyle()
		if fg, bg, ok := pair.Colors(); ok {
			style = style.
				Foreground(lipgloss.Color(fmt.Sprint(fg))).
				Background(lipgloss.Color(fmt.Sprint(bg)))
		}
		swatch := style.Render(" " + titler.String(pair.String()) + " ")
		pad := swatchWidth - ansi.PrintableRuneWidth(swatch)
		if pad < 0 {
			pad = 0
		}
		lines = append(lines, fmt.Sprintf("%d  %s%s", pair, swatch, strings.Repeat(" ", pad)))
	}
	return lines
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chromaseq/sequence"
)

// swatchWidth is the width of one color cell in the strip.
const swatchWidth = 4

var paletteLabelStyle = lipgloss.NewStyle().Faint(true)

// runPalette renders the sequence as a color strip. Presentation only:
// the same colors come from generate as JSON.
func runPalette(cmd *cobra.Command, _ []string) error {
	m, err := parseMethod(methodName)
	if err != nil {
		return err
	}

	hexes, err := sequence.GenerateHex(m, seed, paletteCount, sequence.WithLightness(paletteLightness))
	if err != nil {
		return err
	}

	var strip strings.Builder
	for _, hex := range hexes {
		cell := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Render(strings.Repeat(" ", swatchWidth))
		strip.WriteString(cell)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, strip.String())
	fmt.Fprintln(out, paletteLabelStyle.Render(
		fmt.Sprintf("%s seed=%d n=%d  %s", m.Name(), seed, paletteCount, strings.Join(hexes, " "))))

	return nil
}

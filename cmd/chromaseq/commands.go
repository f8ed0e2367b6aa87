// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chromaseq/invert"
	"github.com/katalvlaran/chromaseq/sequence"
)

// --- Global Command Variables ---
var (
	methodName string
	seed       int64
	bases      string  // Halton radical-inverse bases, e.g. "2,3,5"
	alpha      float64 // Kronecker step
	theta      float64 // Pisot base
	dim        uint32  // RSequence dimension
	cfKind     string  // continued-fraction expansion (golden/sqrt2/e)
	colorMode  string  // multi-dimensional mapping (rgb/hsl)

	// Per-command flag variables. pflag writes each default into its
	// variable at registration time, so commands must not share one.
	generateCount     int
	generateLightness float64
	saturation        float64
	paletteCount      int
	paletteLightness  float64

	maxSearch  uint32
	tolerance  float64
	workers    int
	perceptual bool

	compareN       int
	compareMethods string

	rootCmd = &cobra.Command{
		Use:   "chromaseq",
		Short: "Deterministic low-discrepancy color sequences: generate, invert, compare",
		Long: `chromaseq maps sequence indices to colors through eight
low-discrepancy generators, and recovers the index back from a color
by bounded search. All commands are pure functions of their flags:
same method, seed and index always yield the same color.`,
		SilenceUsage: true,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Produce sequential colors as JSON ({\"colors\":[\"#RRGGBB\",...]})",
		RunE:  runGenerate, // Defined in cmd_generate.go
	}

	invertCmd = &cobra.Command{
		Use:   "invert <#RRGGBB>",
		Short: "Recover the sequence index behind a color",
		Args:  cobra.ExactArgs(1),
		RunE:  runInvert, // Defined in cmd_invert.go
	}

	compareCmd = &cobra.Command{
		Use:   "compare",
		Short: "Rank methods by gap-dispersion uniformity",
		RunE:  runCompare, // Defined in cmd_compare.go
	}

	paletteCmd = &cobra.Command{
		Use:   "palette",
		Short: "Render a color strip in the terminal",
		RunE:  runPalette, // Defined in cmd_palette.go
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&methodName, "method", "m", "golden",
		"Sequence method: golden, plastic, halton, rsequence, kronecker, sobol, pisot, cfrac")
	pf.Int64VarP(&seed, "seed", "s", 0, "Sequence seed; an explicit parameter, never ambient state")
	pf.StringVar(&bases, "bases", "2,3,5", "Halton bases (three comma-separated integers ≥ 2)")
	pf.Float64Var(&alpha, "alpha", 0, "Kronecker step α (0 resolves to √2)")
	pf.Float64Var(&theta, "theta", 0, "Pisot base θ (0 resolves to the golden ratio)")
	pf.Uint32Var(&dim, "dim", 0, "RSequence dimension (0 resolves to 2)")
	pf.StringVar(&cfKind, "kind", "golden", "Continued-fraction expansion: golden, sqrt2, e")
	pf.StringVar(&colorMode, "mode", "rgb", "Halton/Sobol coordinate mapping: rgb or hsl")

	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 8, "Number of colors, starting at the method's natural index")
	generateCmd.Flags().Float64Var(&generateLightness, "lightness", sequence.DefaultLightness, "HSL lightness override")
	generateCmd.Flags().Float64Var(&saturation, "saturation", sequence.DefaultSaturation, "HSL saturation override (fixed-saturation methods)")

	rootCmd.AddCommand(invertCmd)
	invertCmd.Flags().Uint32Var(&maxSearch, "max-search", invert.DefaultMaxSearch, "Inclusive index bound for the scan")
	invertCmd.Flags().Float64Var(&tolerance, "tolerance", invert.DefaultTolerance, "Match threshold (unit RGB cube, or Lab with --perceptual)")
	invertCmd.Flags().IntVar(&workers, "workers", invert.DefaultWorkers, "Partition the scan across goroutines")
	invertCmd.Flags().BoolVar(&perceptual, "perceptual", false, "Match in CIE Lab space instead of the RGB cube")

	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().IntVarP(&compareN, "n", "n", 256, "Samples per method")
	compareCmd.Flags().StringVar(&compareMethods, "methods", "golden,plastic,halton,rsequence,kronecker,sobol,pisot,cfrac",
		"Comma-separated method tags to rank")

	rootCmd.AddCommand(paletteCmd)
	paletteCmd.Flags().IntVarP(&paletteCount, "count", "n", 16, "Number of swatches")
	paletteCmd.Flags().Float64Var(&paletteLightness, "lightness", sequence.DefaultLightness, "HSL lightness override")
}

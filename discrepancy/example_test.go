package discrepancy_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/chromaseq/discrepancy"
	"github.com/katalvlaran/chromaseq/sequence"
)

// ExampleDispersion scores a perfectly even lattice.
func ExampleDispersion() {
	////////////////////////////////////////////////////////////////////
	// Three equidistant points split [0,1] into four identical gaps,  //
	// so the dispersion is exactly zero.                              //
	////////////////////////////////////////////////////////////////////
	d, err := discrepancy.Dispersion([]float64{0.25, 0.5, 0.75})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.4f\n", d)

	// Output:
	// 0.0000
}

// ExampleCompare ranks a genuine low-discrepancy walk against the
// quasiperiodic map, whose integer-seed stream collapses to one point.
func ExampleCompare() {
	report, err := discrepancy.Compare(64, 42, sequence.Golden{}, sequence.Pisot{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(report.Ranking, " < "))

	// Output:
	// golden < pisot
}

package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/chromaseq/sequence"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleColor
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Reproduce the engine's reference vector: the first plastic-sequence
//	color for seed 42. Any conforming implementation, in any language,
//	must print the same hex string.
//
// ExampleColor generates a single deterministic color.
func ExampleColor() {
	c, err := sequence.Color(sequence.Plastic{}, 1, 42)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(c.Hex())
	// Output:
	// #851BE4
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleGenerateHex
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Produce a short wire-format palette. The run starts at the method's
//	natural start index (n=1 for Plastic), so the first element is the
//	reference vector again.
//
// ExampleGenerateHex generates sequential wire-format colors.
func ExampleGenerateHex() {
	hexes, err := sequence.GenerateHex(sequence.Plastic{}, 42, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(hexes[0])
	fmt.Println(len(hexes))
	// Output:
	// #851BE4
	// 2
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleVanDerCorput
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The base-2 radical inverse of the first indices: binary digits of n
//	reflected around the radix point.
//
// ExampleVanDerCorput shows the digit-reflection pattern.
func ExampleVanDerCorput() {
	for n := uint32(1); n <= 4; n++ {
		fmt.Printf("%.4f\n", sequence.VanDerCorput(n, 2))
	}
	// Output:
	// 0.5000
	// 0.2500
	// 0.7500
	// 0.1250
}

package colorspace_test

import (
	"fmt"

	"github.com/katalvlaran/chromaseq/colorspace"
)

// ExampleHSLToRGB converts an HSL coordinate to its wire-format hex.
func ExampleHSLToRGB() {
	c := colorspace.HSLToRGB(120, 1, 0.5)
	fmt.Println(c.Hex())
	// Output:
	// #00FF00
}

// ExampleParseHex parses a wire color and re-renders it, demonstrating
// quantization idempotence.
func ExampleParseHex() {
	c, err := colorspace.ParseHex("#851BE4")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(c.Hex())
	// Output:
	// #851BE4
}

// ExampleDistance measures how far apart two wire colors are in the
// unit RGB cube.
func ExampleDistance() {
	a, _ := colorspace.ParseHex("#000000")
	b, _ := colorspace.ParseHex("#FFFFFF")
	fmt.Printf("%.4f\n", colorspace.Distance(a, b))
	// Output:
	// 1.7321
}

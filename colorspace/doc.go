// Package colorspace provides the color primitives shared by every
// chromaseq generator: HSL→RGB conversion, the #RRGGBB hex codec, and
// color distance in both the unit RGB cube and CIE Lab.
//
// 🚀 What is colorspace?
//
//	The leaf package of the engine. Every generated point ends its life
//	here, mapped from (hue, saturation, lightness) coordinates into an
//	RGB triple, quantized to 8-bit hex for the wire, and compared by
//	distance during inversion.
//
// ✨ Key properties:
//   - Fixed evaluation order — the six-sector HSL conversion computes
//     chroma c=(1-|2l-1|)·s and match value m=l-c/2 exactly as written,
//     so independent ports agree bit-for-bit before quantization.
//   - Round-half-up quantization — RGB.Hex rounds each channel to the
//     nearest of 256 levels; hex→RGB→hex round-trips exactly.
//   - Two distance metrics — Distance (Euclidean, range [0,√3]) for the
//     inversion contract, DistanceLab (CIE Lab via go-colorful) for
//     perceptual consumers.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chromaseq/colorspace"
//
//	c := colorspace.HSLToRGB(271.76, 0.78, 0.5)
//	fmt.Println(c.Hex()) // "#851BE4"
//
//	got, err := colorspace.ParseHex("#851BE4")
//	if err != nil {
//	  // handle ErrMalformedColor
//	}
//	d := colorspace.Distance(c, got)
//
// All functions are pure and safe for concurrent use.
package colorspace

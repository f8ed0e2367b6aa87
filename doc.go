// Package chromaseq turns sequence indices into colors and colors back
// into indices — a deterministic, seedable engine built on
// low-discrepancy sequences.
//
// 🚀 What is chromaseq?
//
//	A pure-function color engine that brings together:
//		• Eight generators: golden, plastic, Halton, R-sequence, Kronecker,
//		  Sobol, Pisot and continued-fraction walks over [0,1)
//		• Color space: HSL→RGB→#RRGGBB conversions with pinned rounding
//		• Inversion: bounded search recovering the index behind a color
//		• Algebra: Newton metallic roots and continued-fraction convergents
//		• Analysis: gap-dispersion ranking of sequence uniformity
//
// ✨ Why choose chromaseq?
//
//   - Deterministic – identical (method, seed, index) always yields the
//     identical color, bit for bit, across machines
//   - No hidden state – the seed is an explicit parameter on every call;
//     nothing global, everything reentrant
//   - Bijective – within a search bound and tolerance, a color uniquely
//     names the index that produced it
//   - Extensible – a closed Method variant set matched exhaustively in
//     both generation and inversion
//
// Under the hood, everything is organized under five subpackages:
//
//	colorspace/  — RGB/HSL conversions, hex wire format, color distance
//	algebra/     — metallic-constant roots & continued-fraction convergents
//	sequence/    — the eight generators and the Method data model
//	invert/      — bounded-search index recovery, serial or parallel
//	discrepancy/ — gap-dispersion statistic & method ranking
//
// Quick taste:
//
//	colors, _ := sequence.GenerateHex(sequence.Plastic{}, 42, 3)
//	// ["#851BE4" ...]
//	res, _ := invert.InvertHex("#851BE4", sequence.Plastic{}, 42)
//	// res.Index == 1
//
// Dive into the per-package docs for the numeric contract, and into
// cmd/chromaseq for the JSON command-line surface.
//
//	go get github.com/katalvlaran/chromaseq
package chromaseq

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/chromaseq/algebra"
	"github.com/katalvlaran/chromaseq/sequence"
)

// parseMethod maps a wire tag plus the method-specific flags onto a
// sequence variant. Each variant reads only its own parameters; a flag
// set for a different method is ignored, not an error.
func parseMethod(name string) (sequence.Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "golden":
		return sequence.Golden{}, nil
	case "plastic":
		return sequence.Plastic{}, nil
	case "halton":
		b, err := parseBases(bases)
		if err != nil {
			return nil, err
		}
		mode, err := parseMode(colorMode)
		if err != nil {
			return nil, err
		}

		return sequence.Halton{Bases: b, Mode: mode}, nil
	case "rsequence":
		return sequence.RSequence{Dim: dim}, nil
	case "kronecker":
		return sequence.Kronecker{Alpha: alpha}, nil
	case "sobol":
		mode, err := parseMode(colorMode)
		if err != nil {
			return nil, err
		}

		return sequence.Sobol{Mode: mode}, nil
	case "pisot":
		return sequence.Pisot{Theta: theta}, nil
	case "cfrac":
		kind, err := parseKind(cfKind)
		if err != nil {
			return nil, err
		}

		return sequence.ContinuedFraction{Kind: kind}, nil
	default:
		return nil, fmt.Errorf("%w: %q", sequence.ErrUnknownMethod, name)
	}
}

// parseMethodList splits a comma-separated tag list for compare.
func parseMethodList(list string) ([]sequence.Method, error) {
	tags := strings.Split(list, ",")
	methods := make([]sequence.Method, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		m, err := parseMethod(tag)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}

	return methods, nil
}

// parseBases reads three comma-separated Halton bases.
func parseBases(s string) ([3]uint32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]uint32{}, fmt.Errorf("%w: --bases wants three comma-separated integers, got %q",
			sequence.ErrBadParameter, s)
	}

	var b [3]uint32
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return [3]uint32{}, fmt.Errorf("%w: --bases element %q", sequence.ErrBadParameter, part)
		}
		b[i] = uint32(v)
	}

	return b, nil
}

// parseKind maps the expansion tag onto its algebra constant.
func parseKind(s string) (algebra.CFKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "golden":
		return algebra.CFGolden, nil
	case "sqrt2":
		return algebra.CFSqrt2, nil
	case "e":
		return algebra.CFE, nil
	default:
		return 0, fmt.Errorf("%w: --kind %q (want golden, sqrt2 or e)", sequence.ErrBadParameter, s)
	}
}

// parseMode maps the mapping tag onto its color mode.
func parseMode(s string) (sequence.ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb":
		return sequence.ModeRGB, nil
	case "hsl":
		return sequence.ModeHSL, nil
	default:
		return 0, fmt.Errorf("%w: --mode %q (want rgb or hsl)", sequence.ErrBadParameter, s)
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chromaseq/invert"
)

// invertResponse is the wire shape of the invert command.
type invertResponse struct {
	Found    bool    `json:"found"`
	Index    uint32  `json:"index"`
	Distance float64 `json:"distance"`
}

// runInvert recovers the index behind the positional hex color.
func runInvert(cmd *cobra.Command, args []string) error {
	m, err := parseMethod(methodName)
	if err != nil {
		return err
	}

	opts := []invert.Option{
		invert.WithMaxSearch(maxSearch),
		invert.WithWorkers(workers),
	}
	if perceptual {
		opts = append(opts, invert.WithPerceptualDistance())
	}
	// An explicit tolerance overrides both defaults; otherwise the
	// perceptual mode derives its own Lab threshold.
	if cmd.Flags().Changed("tolerance") || !perceptual {
		opts = append(opts, invert.WithTolerance(tolerance))
	}

	res, err := invert.InvertHex(args[0], m, seed, opts...)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())

	return enc.Encode(invertResponse{Found: res.Found, Index: res.Index, Distance: res.Distance})
}

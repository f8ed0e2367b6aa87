// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chromaseq/sequence"
)

// generateResponse is the wire shape of the generate command.
type generateResponse struct {
	Colors []string `json:"colors"`
}

// runGenerate produces count sequential colors for the selected method
// and prints them as JSON.
func runGenerate(cmd *cobra.Command, _ []string) error {
	m, err := parseMethod(methodName)
	if err != nil {
		return err
	}

	hexes, err := sequence.GenerateHex(m, seed, generateCount,
		sequence.WithLightness(generateLightness), sequence.WithSaturation(saturation))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())

	return enc.Encode(generateResponse{Colors: hexes})
}

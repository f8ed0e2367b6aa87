// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chromaseq/discrepancy"
)

// compareResponse is the wire shape of the compare command.
type compareResponse struct {
	Discrepancy map[string]float64 `json:"discrepancy"`
	Ranking     []string           `json:"ranking"`
}

// runCompare ranks the requested methods by gap dispersion.
func runCompare(cmd *cobra.Command, _ []string) error {
	methods, err := parseMethodList(compareMethods)
	if err != nil {
		return err
	}

	report, err := discrepancy.Compare(compareN, seed, methods...)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())

	return enc.Encode(compareResponse{Discrepancy: report.Dispersion, Ranking: report.Ranking})
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
)

func main() {
	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "chromaseq:", err)
		os.Exit(1)
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/katalvlaran/lvlsparse/cmd/lvlsparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

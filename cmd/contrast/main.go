// Contrast - perceptual colour contrast measurement and correction
//
// Contrast measures the contrast between text and background colours with
// APCA, WCAG 2.1, Michelson and Delta-Phi*, and finds text colours that
// reach a target contrast.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/contrast/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

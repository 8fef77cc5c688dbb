// Swatch - A colour palette generator
//
// Swatch builds palettes from colour-theory schemes, checks WCAG contrast,
// and keeps a local collection of named palettes.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

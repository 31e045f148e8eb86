// SPDX-License-Identifier: MIT
// Package: astargrid/layout
//
// registry.go - name → Layout resolution for configuration files and flags.

package layout

import (
	"fmt"
	"slices"
	"strings"
)

// Params carries the arguments of parameterized layouts for ByName.
type Params struct {
	Density float64 // random
	WallCol int     // wall
	Gaps    []int   // wall
}

var registry = map[string]func(Params) Layout{
	"none":     func(Params) Layout { return None() },
	"checker":  func(Params) Layout { return Checker() },
	"diagonal": func(Params) Layout { return DiagonalBand() },
	"wall":     func(p Params) Layout { return Wall(p.WallCol, p.Gaps...) },
	"random":   func(p Params) Layout { return Random(p.Density) },
}

// ByName returns the layout registered under name (case-insensitive).
func ByName(name string, p Params) (Layout, error) {
	mk, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownLayout, name, strings.Join(Names(), ", "))
	}
	return mk(p), nil
}

// Names lists the registered layout names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SPDX-License-Identifier: MIT
// Package: astargrid/layout
//
// errors.go - sentinel errors for the layout package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Layouts attach context with %w; sentinels carry no parameters.
//   • Layouts never panic; validation panics are confined to option constructors.

package layout

import "errors"

// ErrNilGrid indicates Apply was called with a nil grid.
var ErrNilGrid = errors.New("layout: grid is nil")

// ErrNilLayout indicates a nil Layout in the Apply list.
var ErrNilLayout = errors.New("layout: nil layout")

// ErrNeedRandSource indicates a stochastic layout ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("layout: rng is required")

// ErrInvalidDensity indicates a density outside [0,1].
var ErrInvalidDensity = errors.New("layout: density out of range")

// ErrOutOfBounds indicates a layout parameter that addresses cells outside the grid.
var ErrOutOfBounds = errors.New("layout: parameter out of grid bounds")

// ErrUnknownLayout indicates ByName received an unregistered name.
var ErrUnknownLayout = errors.New("layout: unknown layout")

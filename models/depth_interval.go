// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package models

import "fmt"

// DepthInterval is a half-open [Start, End) depth range in centimeters
// identifying a soil sample band.
//
// Interval identity is positional: two intervals are the same interval if and
// only if their bounds match. Labels and other fields carried alongside an
// interval never participate in identity. Use [DepthInterval.Key] wherever an
// interval needs to act as a map key.
type DepthInterval struct {
	// Start is the inclusive upper bound of the band, in cm below the surface.
	Start int `json:"start"`

	// End is the exclusive lower bound of the band, in cm below the surface.
	End int `json:"end"`
}

// Key returns the canonical string form of the interval, "[start-end)".
// The format is stable and is used as the map key for all per-interval
// change bookkeeping, which keeps diff output independent of slice order.
func (d DepthInterval) Key() string {
	return fmt.Sprintf("[%d-%d)", d.Start, d.End)
}

// Valid reports whether the interval describes a non-empty band at or below
// the surface.
func (d DepthInterval) Valid() bool {
	return d.Start >= 0 && d.End > d.Start
}

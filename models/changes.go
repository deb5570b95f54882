// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package models

// FieldChange records that a named top-level field changed, together with the
// value it changed to. Field names come from the closed update-field tables
// in the diff engine; free-form names never appear here.
type FieldChange struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// DepthIntervalChange describes what happened to one sampling band between
// two snapshots. Deleted marks a band present in the previous snapshot but
// absent from the current one; otherwise FieldChanges holds the band's
// changed fields (all fields, for a newly created band).
type DepthIntervalChange struct {
	DepthInterval DepthInterval          `json:"depthInterval"`
	Deleted       bool                   `json:"deleted"`
	FieldChanges  map[string]FieldChange `json:"fieldChanges"`
}

// DepthDependentChange describes changed measurements for one sampling band.
// Measurement data has no deletion concept: bands disappear via
// DepthIntervalChange.Deleted, taking their measurements with them.
type DepthDependentChange struct {
	DepthInterval DepthInterval          `json:"depthInterval"`
	FieldChanges  map[string]FieldChange `json:"fieldChanges"`
}

// SoilDataChanges is the diff of one site's soil data between two snapshots.
// All three maps are keyed canonically (field name, or [DepthInterval.Key]),
// so two diffs of the same snapshot pair are structurally identical
// regardless of slice order in the inputs. Never nil maps: use
// [NewSoilDataChanges].
type SoilDataChanges struct {
	FieldChanges          map[string]FieldChange          `json:"fieldChanges"`
	DepthIntervalChanges  map[string]DepthIntervalChange  `json:"depthIntervalChanges"`
	DepthDependentChanges map[string]DepthDependentChange `json:"depthDependentChanges"`
}

// NewSoilDataChanges returns an empty change set with all maps allocated.
func NewSoilDataChanges() SoilDataChanges {
	return SoilDataChanges{
		FieldChanges:          map[string]FieldChange{},
		DepthIntervalChanges:  map[string]DepthIntervalChange{},
		DepthDependentChanges: map[string]DepthDependentChange{},
	}
}

// Empty reports whether the change set carries no changes at all.
func (c SoilDataChanges) Empty() bool {
	return len(c.FieldChanges) == 0 &&
		len(c.DepthIntervalChanges) == 0 &&
		len(c.DepthDependentChanges) == 0
}

// UnifySoilDataChanges merges two change sets, with b taking precedence.
// A deletion in b replaces any accumulated field changes for that band.
func UnifySoilDataChanges(a, b SoilDataChanges) SoilDataChanges {
	out := NewSoilDataChanges()
	for k, v := range a.FieldChanges {
		out.FieldChanges[k] = v
	}
	for k, v := range b.FieldChanges {
		out.FieldChanges[k] = v
	}

	for k, v := range a.DepthIntervalChanges {
		out.DepthIntervalChanges[k] = v
	}
	for k, v := range b.DepthIntervalChanges {
		if v.Deleted {
			out.DepthIntervalChanges[k] = v
			continue
		}
		merged := DepthIntervalChange{
			DepthInterval: v.DepthInterval,
			FieldChanges:  map[string]FieldChange{},
		}
		if prev, ok := out.DepthIntervalChanges[k]; ok && !prev.Deleted {
			for f, fc := range prev.FieldChanges {
				merged.FieldChanges[f] = fc
			}
		}
		for f, fc := range v.FieldChanges {
			merged.FieldChanges[f] = fc
		}
		out.DepthIntervalChanges[k] = merged
	}

	for k, v := range a.DepthDependentChanges {
		out.DepthDependentChanges[k] = v
	}
	for k, v := range b.DepthDependentChanges {
		merged := DepthDependentChange{
			DepthInterval: v.DepthInterval,
			FieldChanges:  map[string]FieldChange{},
		}
		if prev, ok := out.DepthDependentChanges[k]; ok {
			for f, fc := range prev.FieldChanges {
				merged.FieldChanges[f] = fc
			}
		}
		for f, fc := range v.FieldChanges {
			merged.FieldChanges[f] = fc
		}
		out.DepthDependentChanges[k] = merged
	}

	return out
}

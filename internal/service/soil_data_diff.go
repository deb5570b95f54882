// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package service

import (
	"reflect"
	"sort"

	"github.com/soilstack/fieldsync/models"
)

// The diff engine computes the minimal change description between a previous
// synced snapshot and the current local snapshot of one site's soil data.
// Field identity comes from closed accessor tables rather than reflection
// over struct fields, so the set of diffable fields is explicit and the wire
// names are pinned. Interval identity is positional: two bands are the same
// band iff their [start,end) bounds match (see [models.DepthInterval.Key]).
//
// Determinism: outputs are keyed canonically (field name / interval key) and
// the ordered push-input forms are sorted, so diffing the same snapshot pair
// twice yields identical results regardless of input slice order.

type fieldAccessor[T any] struct {
	name string
	get  func(*T) any
}

var soilDataFields = []fieldAccessor[models.SoilData]{
	{"bedrock", func(d *models.SoilData) any { return d.Bedrock }},
	{"crossSlope", func(d *models.SoilData) any { return d.CrossSlope }},
	{"downSlope", func(d *models.SoilData) any { return d.DownSlope }},
	{"depthIntervalPreset", func(d *models.SoilData) any { return d.DepthIntervalPreset }},
	{"floodingSelect", func(d *models.SoilData) any { return d.FloodingSelect }},
	{"grazingSelect", func(d *models.SoilData) any { return d.GrazingSelect }},
	{"landCoverSelect", func(d *models.SoilData) any { return d.LandCoverSelect }},
	{"limeRequirementsSelect", func(d *models.SoilData) any { return d.LimeRequirementsSelect }},
	{"slopeAspect", func(d *models.SoilData) any { return d.SlopeAspect }},
	{"slopeLandscapePosition", func(d *models.SoilData) any { return d.SlopeLandscapePosition }},
	{"slopeSteepnessDegree", func(d *models.SoilData) any { return d.SlopeSteepnessDegree }},
	{"slopeSteepnessPercent", func(d *models.SoilData) any { return d.SlopeSteepnessPercent }},
	{"slopeSteepnessSelect", func(d *models.SoilData) any { return d.SlopeSteepnessSelect }},
	{"soilDepthSelect", func(d *models.SoilData) any { return d.SoilDepthSelect }},
	{"surfaceCracksSelect", func(d *models.SoilData) any { return d.SurfaceCracksSelect }},
	{"surfaceSaltSelect", func(d *models.SoilData) any { return d.SurfaceSaltSelect }},
	{"surfaceStoninessSelect", func(d *models.SoilData) any { return d.SurfaceStoninessSelect }},
	{"waterTableDepthSelect", func(d *models.SoilData) any { return d.WaterTableDepthSelect }},
}

var depthIntervalFields = []fieldAccessor[models.SoilDataDepthInterval]{
	{"label", func(d *models.SoilDataDepthInterval) any { return d.Label }},
	{"carbonatesEnabled", func(d *models.SoilDataDepthInterval) any { return d.CarbonatesEnabled }},
	{"electricalConductivityEnabled", func(d *models.SoilDataDepthInterval) any { return d.ElectricalConductivityEnabled }},
	{"phEnabled", func(d *models.SoilDataDepthInterval) any { return d.PhEnabled }},
	{"sodiumAdsorptionRatioEnabled", func(d *models.SoilDataDepthInterval) any { return d.SodiumAdsorptionRatioEnabled }},
	{"soilColorEnabled", func(d *models.SoilDataDepthInterval) any { return d.SoilColorEnabled }},
	{"soilOrganicCarbonMatterEnabled", func(d *models.SoilDataDepthInterval) any { return d.SoilOrganicCarbonMatterEnabled }},
	{"soilStructureEnabled", func(d *models.SoilDataDepthInterval) any { return d.SoilStructureEnabled }},
	{"soilTextureEnabled", func(d *models.SoilDataDepthInterval) any { return d.SoilTextureEnabled }},
}

var depthDependentFields = []fieldAccessor[models.DepthDependentSoilData]{
	{"carbonates", func(d *models.DepthDependentSoilData) any { return d.Carbonates }},
	{"clayPercent", func(d *models.DepthDependentSoilData) any { return d.ClayPercent }},
	{"colorChroma", func(d *models.DepthDependentSoilData) any { return d.ColorChroma }},
	{"colorHue", func(d *models.DepthDependentSoilData) any { return d.ColorHue }},
	{"colorValue", func(d *models.DepthDependentSoilData) any { return d.ColorValue }},
	{"conductivity", func(d *models.DepthDependentSoilData) any { return d.Conductivity }},
	{"ph", func(d *models.DepthDependentSoilData) any { return d.Ph }},
	{"rockFragmentVolume", func(d *models.DepthDependentSoilData) any { return d.RockFragmentVolume }},
	{"soilOrganicCarbon", func(d *models.DepthDependentSoilData) any { return d.SoilOrganicCarbon }},
	{"structure", func(d *models.DepthDependentSoilData) any { return d.Structure }},
	{"texture", func(d *models.DepthDependentSoilData) any { return d.Texture }},
}

// changedFields compares prev and curr through a field table, reporting the
// curr-side value of every field whose value differs. Pointer fields compare
// by pointed-to value, so two distinct pointers to equal values are unchanged.
func changedFields[T any](prev, curr *T, fields []fieldAccessor[T]) map[string]models.FieldChange {
	changes := map[string]models.FieldChange{}
	for _, field := range fields {
		prevValue := field.get(prev)
		currValue := field.get(curr)
		if !reflect.DeepEqual(prevValue, currValue) {
			changes[field.name] = models.FieldChange{Field: field.name, Value: currValue}
		}
	}
	return changes
}

// ChangedSoilDataFields returns the top-level scalar fields that differ
// between prev and curr. A nil prev compares against the empty snapshot, so
// every recorded field of a newly created entity is a change.
func ChangedSoilDataFields(prev *models.SoilData, curr models.SoilData) map[string]models.FieldChange {
	if prev == nil {
		prev = &models.SoilData{}
	}
	return changedFields(prev, &curr, soilDataFields)
}

// ChangedDepthIntervals diffs the configured sampling bands of two
// snapshots, keyed canonically by interval bounds:
//   - bands in prev but not curr → a deleted entry
//   - bands in both → their changed fields, omitted entirely if unchanged
//   - bands only in curr → a creation entry, even when all fields are unset
func ChangedDepthIntervals(prev *models.SoilData, curr models.SoilData) map[string]models.DepthIntervalChange {
	prevByKey := map[string]models.SoilDataDepthInterval{}
	if prev != nil {
		for _, interval := range prev.DepthIntervals {
			prevByKey[interval.DepthInterval.Key()] = interval
		}
	}

	changes := map[string]models.DepthIntervalChange{}

	currKeys := map[string]bool{}
	for _, interval := range curr.DepthIntervals {
		key := interval.DepthInterval.Key()
		currKeys[key] = true

		prevInterval, existed := prevByKey[key]
		fieldChanges := changedFields(&prevInterval, &interval, depthIntervalFields)
		if !existed || len(fieldChanges) > 0 {
			changes[key] = models.DepthIntervalChange{
				DepthInterval: interval.DepthInterval,
				FieldChanges:  fieldChanges,
			}
		}
	}

	for key, prevInterval := range prevByKey {
		if !currKeys[key] {
			changes[key] = models.DepthIntervalChange{
				DepthInterval: prevInterval.DepthInterval,
				Deleted:       true,
				FieldChanges:  map[string]models.FieldChange{},
			}
		}
	}

	return changes
}

// DeletedDepthIntervals returns the bounds of every band present in prev and
// absent from curr, identified solely by [start,end) regardless of label or
// other field differences. Returns an empty slice when prev is nil. The
// result is ordered by start bound for determinism.
func DeletedDepthIntervals(curr models.SoilData, prev *models.SoilData) []models.DepthInterval {
	deleted := []models.DepthInterval{}
	if prev == nil {
		return deleted
	}

	currKeys := map[string]bool{}
	for _, interval := range curr.DepthIntervals {
		currKeys[interval.DepthInterval.Key()] = true
	}

	for _, interval := range prev.DepthIntervals {
		if !currKeys[interval.DepthInterval.Key()] {
			deleted = append(deleted, interval.DepthInterval)
		}
	}

	sort.Slice(deleted, func(i, j int) bool {
		if deleted[i].Start != deleted[j].Start {
			return deleted[i].Start < deleted[j].Start
		}
		return deleted[i].End < deleted[j].End
	})

	return deleted
}

// ChangedDepthDependentData diffs the per-band measurements of two
// snapshots. Measurements have no deletion concept: a band's measurements
// disappear with the band itself.
func ChangedDepthDependentData(prev *models.SoilData, curr models.SoilData) map[string]models.DepthDependentChange {
	prevByKey := map[string]models.DepthDependentSoilData{}
	if prev != nil {
		for _, data := range prev.DepthDependentData {
			prevByKey[data.DepthInterval.Key()] = data
		}
	}

	changes := map[string]models.DepthDependentChange{}
	for _, data := range curr.DepthDependentData {
		key := data.DepthInterval.Key()

		prevData, existed := prevByKey[key]
		fieldChanges := changedFields(&prevData, &data, depthDependentFields)
		if !existed || len(fieldChanges) > 0 {
			changes[key] = models.DepthDependentChange{
				DepthInterval: data.DepthInterval,
				FieldChanges:  fieldChanges,
			}
		}
	}

	return changes
}

// DiffSoilData produces the full change set between a previous synced
// snapshot (nil for a never-synced entity) and the current local snapshot.
func DiffSoilData(prev *models.SoilData, curr models.SoilData) models.SoilDataChanges {
	return models.SoilDataChanges{
		FieldChanges:          ChangedSoilDataFields(prev, curr),
		DepthIntervalChanges:  ChangedDepthIntervals(prev, curr),
		DepthDependentChanges: ChangedDepthDependentData(prev, curr),
	}
}

// PushInputFromChanges converts a change set into its wire form, with all
// collections in canonical-key order.
func PushInputFromChanges(changes models.SoilDataChanges) models.SoilDataPushInput {
	input := models.SoilDataPushInput{
		FieldUpdates:          map[string]any{},
		DepthIntervals:        []models.DepthIntervalUpdate{},
		DeletedDepthIntervals: []models.DepthInterval{},
		DepthDependentData:    []models.DepthIntervalUpdate{},
	}

	for name, change := range changes.FieldChanges {
		input.FieldUpdates[name] = change.Value
	}

	for _, key := range sortedKeys(changes.DepthIntervalChanges) {
		change := changes.DepthIntervalChanges[key]
		if change.Deleted {
			input.DeletedDepthIntervals = append(input.DeletedDepthIntervals, change.DepthInterval)
			continue
		}
		input.DepthIntervals = append(input.DepthIntervals, models.DepthIntervalUpdate{
			DepthInterval: change.DepthInterval,
			FieldUpdates:  fieldUpdates(change.FieldChanges),
		})
	}

	for _, key := range sortedKeys(changes.DepthDependentChanges) {
		change := changes.DepthDependentChanges[key]
		input.DepthDependentData = append(input.DepthDependentData, models.DepthIntervalUpdate{
			DepthInterval: change.DepthInterval,
			FieldUpdates:  fieldUpdates(change.FieldChanges),
		})
	}

	return input
}

func fieldUpdates(changes map[string]models.FieldChange) map[string]any {
	updates := make(map[string]any, len(changes))
	for name, change := range changes {
		updates[name] = change.Value
	}
	return updates
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soilstack/fieldsync/models"
)

func intPtr(v int) *int                               { return &v }
func strPtr(v string) *string                         { return &v }
func boolPtr(v bool) *bool                            { return &v }
func floatPtr(v float64) *float64                     { return &v }
func shapePtr(v models.SlopeShape) *models.SlopeShape { return &v }

func TestChangedSoilDataFields_NilPrevReportsAllRecordedFields(t *testing.T) {
	curr := models.SoilData{
		Bedrock:    intPtr(12),
		CrossSlope: shapePtr(models.SlopeShapeConcave),
	}

	changes := ChangedSoilDataFields(nil, curr)

	require.Len(t, changes, 2)
	assert.Equal(t, intPtr(12), changes["bedrock"].Value)
	assert.Equal(t, shapePtr(models.SlopeShapeConcave), changes["crossSlope"].Value)
}

func TestChangedSoilDataFields_EqualPointersAreUnchanged(t *testing.T) {
	prev := &models.SoilData{Bedrock: intPtr(12), GrazingSelect: strPtr("CATTLE")}
	curr := models.SoilData{Bedrock: intPtr(12), GrazingSelect: strPtr("SHEEP")}

	changes := ChangedSoilDataFields(prev, curr)

	// distinct pointers to equal values do not count as a change
	require.Len(t, changes, 1)
	assert.Equal(t, strPtr("SHEEP"), changes["grazingSelect"].Value)
}

func TestChangedSoilDataFields_ClearingAFieldIsAChange(t *testing.T) {
	prev := &models.SoilData{SoilDepthSelect: strPtr("BETWEEN_50_AND_70_CM")}
	curr := models.SoilData{}

	changes := ChangedSoilDataFields(prev, curr)

	require.Len(t, changes, 1)
	assert.Nil(t, changes["soilDepthSelect"].Value)
}

func TestChangedDepthIntervals_NewBandReportedEvenWhenEmpty(t *testing.T) {
	curr := models.SoilData{
		DepthIntervals: []models.SoilDataDepthInterval{
			{DepthInterval: models.DepthInterval{Start: 0, End: 10}},
		},
	}

	changes := ChangedDepthIntervals(nil, curr)

	require.Len(t, changes, 1)
	change := changes["[0-10)"]
	assert.False(t, change.Deleted)
	assert.Equal(t, models.DepthInterval{Start: 0, End: 10}, change.DepthInterval)
	assert.Empty(t, change.FieldChanges)
}

func TestChangedDepthIntervals_UnchangedBandOmitted(t *testing.T) {
	prev := &models.SoilData{
		DepthIntervals: []models.SoilDataDepthInterval{
			{Label: "topsoil", DepthInterval: models.DepthInterval{Start: 0, End: 10}, PhEnabled: boolPtr(true)},
		},
	}
	curr := models.SoilData{
		DepthIntervals: []models.SoilDataDepthInterval{
			{Label: "topsoil", DepthInterval: models.DepthInterval{Start: 0, End: 10}, PhEnabled: boolPtr(true)},
		},
	}

	assert.Empty(t, ChangedDepthIntervals(prev, curr))
}

func TestChangedDepthIntervals_RemovedBandReportedAsDeleted(t *testing.T) {
	prev := &models.SoilData{
		DepthIntervals: []models.SoilDataDepthInterval{
			{DepthInterval: models.DepthInterval{Start: 1, End: 2}},
			{DepthInterval: models.DepthInterval{Start: 2, End: 3}},
		},
	}
	curr := models.SoilData{
		DepthIntervals: []models.SoilDataDepthInterval{
			{DepthInterval: models.DepthInterval{Start: 2, End: 3}},
		},
	}

	changes := ChangedDepthIntervals(prev, curr)

	require.Len(t, changes, 1)
	assert.True(t, changes["[1-2)"].Deleted)
}

func TestDeletedDepthIntervals_IdentityIsPositional(t *testing.T) {
	prev := &models.SoilData{
		DepthIntervals: []models.SoilDataDepthInterval{
			{Label: "a", DepthInterval: models.DepthInterval{Start: 1, End: 2}},
			{Label: "b", DepthInterval: models.DepthInterval{Start: 2, End: 3}},
		},
	}
	curr := models.SoilData{
		DepthIntervals: []models.SoilDataDepthInterval{
			// relabelled, but same bounds: still the same band
			{Label: "renamed", DepthInterval: models.DepthInterval{Start: 2, End: 3}},
		},
	}

	deleted := DeletedDepthIntervals(curr, prev)

	assert.Equal(t, []models.DepthInterval{{Start: 1, End: 2}}, deleted)
}

func TestDeletedDepthIntervals_NilPrevIsEmpty(t *testing.T) {
	curr := models.SoilData{
		DepthIntervals: []models.SoilDataDepthInterval{
			{DepthInterval: models.DepthInterval{Start: 0, End: 10}},
		},
	}

	assert.Empty(t, DeletedDepthIntervals(curr, nil))
}

func TestDeletedDepthIntervals_SortedByStart(t *testing.T) {
	prev := &models.SoilData{
		DepthIntervals: []models.SoilDataDepthInterval{
			{DepthInterval: models.DepthInterval{Start: 30, End: 40}},
			{DepthInterval: models.DepthInterval{Start: 0, End: 10}},
			{DepthInterval: models.DepthInterval{Start: 10, End: 20}},
		},
	}

	deleted := DeletedDepthIntervals(models.SoilData{}, prev)

	assert.Equal(t, []models.DepthInterval{
		{Start: 0, End: 10},
		{Start: 10, End: 20},
		{Start: 30, End: 40},
	}, deleted)
}

func TestChangedDepthDependentData_ReportsChangedMeasurements(t *testing.T) {
	prev := &models.SoilData{
		DepthDependentData: []models.DepthDependentSoilData{
			{DepthInterval: models.DepthInterval{Start: 0, End: 10}, Ph: floatPtr(6.5)},
		},
	}
	curr := models.SoilData{
		DepthDependentData: []models.DepthDependentSoilData{
			{DepthInterval: models.DepthInterval{Start: 0, End: 10}, Ph: floatPtr(7.1), Texture: strPtr("CLAY")},
		},
	}

	changes := ChangedDepthDependentData(prev, curr)

	require.Len(t, changes, 1)
	fields := changes["[0-10)"].FieldChanges
	require.Len(t, fields, 2)
	assert.Equal(t, floatPtr(7.1), fields["ph"].Value)
	assert.Equal(t, strPtr("CLAY"), fields["texture"].Value)
}

func TestDiffSoilData_Idempotent(t *testing.T) {
	prev := &models.SoilData{
		Bedrock: intPtr(5),
		DepthIntervals: []models.SoilDataDepthInterval{
			{DepthInterval: models.DepthInterval{Start: 0, End: 10}, PhEnabled: boolPtr(false)},
			{DepthInterval: models.DepthInterval{Start: 10, End: 20}},
		},
		DepthDependentData: []models.DepthDependentSoilData{
			{DepthInterval: models.DepthInterval{Start: 0, End: 10}, ClayPercent: intPtr(30)},
		},
	}
	curr := models.SoilData{
		Bedrock:    intPtr(8),
		CrossSlope: shapePtr(models.SlopeShapeLinear),
		DepthIntervals: []models.SoilDataDepthInterval{
			{DepthInterval: models.DepthInterval{Start: 0, End: 10}, PhEnabled: boolPtr(true)},
		},
		DepthDependentData: []models.DepthDependentSoilData{
			{DepthInterval: models.DepthInterval{Start: 0, End: 10}, ClayPercent: intPtr(35)},
		},
	}

	first := DiffSoilData(prev, curr)
	second := DiffSoilData(prev, curr)

	assert.Equal(t, first, second)
	assert.True(t, first.DepthIntervalChanges["[10-20)"].Deleted)
	assert.Equal(t, intPtr(8), first.FieldChanges["bedrock"].Value)
}

func TestDiffSoilData_NoDifferenceIsEmpty(t *testing.T) {
	snapshot := models.SoilData{
		Bedrock: intPtr(5),
		DepthIntervals: []models.SoilDataDepthInterval{
			{DepthInterval: models.DepthInterval{Start: 0, End: 10}},
		},
	}

	changes := DiffSoilData(&snapshot, snapshot)

	assert.True(t, changes.Empty())
}

func TestPushInputFromChanges_CanonicalOrder(t *testing.T) {
	prev := &models.SoilData{
		DepthIntervals: []models.SoilDataDepthInterval{
			{DepthInterval: models.DepthInterval{Start: 50, End: 60}},
		},
	}
	curr := models.SoilData{
		Bedrock: intPtr(3),
		DepthIntervals: []models.SoilDataDepthInterval{
			{DepthInterval: models.DepthInterval{Start: 20, End: 30}},
			{DepthInterval: models.DepthInterval{Start: 0, End: 10}},
		},
	}

	input := PushInputFromChanges(DiffSoilData(prev, curr))

	require.Len(t, input.DepthIntervals, 2)
	assert.Equal(t, models.DepthInterval{Start: 0, End: 10}, input.DepthIntervals[0].DepthInterval)
	assert.Equal(t, models.DepthInterval{Start: 20, End: 30}, input.DepthIntervals[1].DepthInterval)
	assert.Equal(t, []models.DepthInterval{{Start: 50, End: 60}}, input.DeletedDepthIntervals)
	assert.Equal(t, intPtr(3), input.FieldUpdates["bedrock"])
	assert.Empty(t, input.DepthDependentData)
}

func TestUnifySoilDataChanges_DeletionWins(t *testing.T) {
	interval := models.DepthInterval{Start: 0, End: 10}

	a := models.NewSoilDataChanges()
	a.DepthIntervalChanges[interval.Key()] = models.DepthIntervalChange{
		DepthInterval: interval,
		FieldChanges: map[string]models.FieldChange{
			"label": {Field: "label", Value: "topsoil"},
		},
	}

	b := models.NewSoilDataChanges()
	b.DepthIntervalChanges[interval.Key()] = models.DepthIntervalChange{
		DepthInterval: interval,
		Deleted:       true,
		FieldChanges:  map[string]models.FieldChange{},
	}

	out := models.UnifySoilDataChanges(a, b)

	require.Len(t, out.DepthIntervalChanges, 1)
	assert.True(t, out.DepthIntervalChanges[interval.Key()].Deleted)
	assert.Empty(t, out.DepthIntervalChanges[interval.Key()].FieldChanges)
}

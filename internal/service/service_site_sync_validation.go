package service

import (
	"fmt"

	"github.com/soilstack/fieldsync/models"
)

// Allowed wire names per update map, derived from the same closed field
// tables the diff engine emits from. An update naming anything outside these
// sets is rejected as invalid data.
var (
	soilDataFieldNames       = fieldNameSet(soilDataFields)
	depthIntervalFieldNames  = fieldNameSet(depthIntervalFields)
	depthDependentFieldNames = fieldNameSet(depthDependentFields)
)

func fieldNameSet[T any](fields []fieldAccessor[T]) map[string]struct{} {
	names := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		names[field.name] = struct{}{}
	}
	return names
}

// validateSoilDataInput checks a push input's structure before it is applied:
// every update must name a known field and every interval must describe a
// valid non-empty band.
func validateSoilDataInput(input models.SoilDataPushInput) error {
	for field := range input.FieldUpdates {
		if _, ok := soilDataFieldNames[field]; !ok {
			return fmt.Errorf("%w: unknown soil data field %q", ErrInvalidDataProvided, field)
		}
	}

	for _, change := range input.DepthIntervals {
		if !change.DepthInterval.Valid() {
			return fmt.Errorf("%w: invalid depth interval %s", ErrInvalidDataProvided, change.DepthInterval.Key())
		}
		for field := range change.FieldUpdates {
			if _, ok := depthIntervalFieldNames[field]; !ok {
				return fmt.Errorf("%w: unknown depth interval field %q", ErrInvalidDataProvided, field)
			}
		}
	}

	for _, change := range input.DepthDependentData {
		if !change.DepthInterval.Valid() {
			return fmt.Errorf("%w: invalid depth interval %s", ErrInvalidDataProvided, change.DepthInterval.Key())
		}
		for field := range change.FieldUpdates {
			if _, ok := depthDependentFieldNames[field]; !ok {
				return fmt.Errorf("%w: unknown depth-dependent field %q", ErrInvalidDataProvided, field)
			}
		}
	}

	for _, interval := range input.DeletedDepthIntervals {
		if !interval.Valid() {
			return fmt.Errorf("%w: invalid deleted depth interval %s", ErrInvalidDataProvided, interval.Key())
		}
	}

	return nil
}

// validateUserRatings checks a pushed ratings list: every entry must carry a
// soil match id, without duplicates.
func validateUserRatings(ratings []models.UserRating) error {
	seen := make(map[string]struct{}, len(ratings))
	for _, rating := range ratings {
		if rating.SoilMatchID == "" {
			return fmt.Errorf("%w: rating without a soil match id", ErrInvalidDataProvided)
		}
		if _, dup := seen[rating.SoilMatchID]; dup {
			return fmt.Errorf("%w: duplicate rating for soil match %q", ErrInvalidDataProvided, rating.SoilMatchID)
		}
		seen[rating.SoilMatchID] = struct{}{}
	}
	return nil
}

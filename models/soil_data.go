// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package models

// SlopeShape enumerates the cross/down slope shape observations.
type SlopeShape string

const (
	SlopeShapeConcave SlopeShape = "CONCAVE"
	SlopeShapeConvex  SlopeShape = "CONVEX"
	SlopeShapeLinear  SlopeShape = "LINEAR"
)

// SoilData is the full synchronizable soil observation record for one site.
//
// Top-level fields are independent scalar observations; nil means "not
// recorded". DepthIntervals holds the user's configured sampling bands and
// DepthDependentData holds the per-band measurements. The two collections are
// keyed positionally by their interval bounds (see [DepthInterval.Key]), so a
// band keeps its identity across edits to its label or enabled inputs.
type SoilData struct {
	Bedrock *int `json:"bedrock,omitempty"`

	CrossSlope *SlopeShape `json:"crossSlope,omitempty"`
	DownSlope  *SlopeShape `json:"downSlope,omitempty"`

	DepthIntervalPreset *string `json:"depthIntervalPreset,omitempty"`

	FloodingSelect         *string `json:"floodingSelect,omitempty"`
	GrazingSelect          *string `json:"grazingSelect,omitempty"`
	LandCoverSelect        *string `json:"landCoverSelect,omitempty"`
	LimeRequirementsSelect *string `json:"limeRequirementsSelect,omitempty"`

	SlopeAspect            *int    `json:"slopeAspect,omitempty"`
	SlopeLandscapePosition *string `json:"slopeLandscapePosition,omitempty"`
	SlopeSteepnessDegree   *int    `json:"slopeSteepnessDegree,omitempty"`
	SlopeSteepnessPercent  *int    `json:"slopeSteepnessPercent,omitempty"`
	SlopeSteepnessSelect   *string `json:"slopeSteepnessSelect,omitempty"`

	SoilDepthSelect        *string `json:"soilDepthSelect,omitempty"`
	SurfaceCracksSelect    *string `json:"surfaceCracksSelect,omitempty"`
	SurfaceSaltSelect      *string `json:"surfaceSaltSelect,omitempty"`
	SurfaceStoninessSelect *string `json:"surfaceStoninessSelect,omitempty"`
	WaterTableDepthSelect  *string `json:"waterTableDepthSelect,omitempty"`

	DepthIntervals     []SoilDataDepthInterval  `json:"depthIntervals"`
	DepthDependentData []DepthDependentSoilData `json:"depthDependentData"`
}

// SoilDataDepthInterval is a configured sampling band: its bounds, an
// optional display label, and which measurement inputs are enabled for it.
type SoilDataDepthInterval struct {
	Label         string        `json:"label"`
	DepthInterval DepthInterval `json:"depthInterval"`

	CarbonatesEnabled              *bool `json:"carbonatesEnabled,omitempty"`
	ElectricalConductivityEnabled  *bool `json:"electricalConductivityEnabled,omitempty"`
	PhEnabled                      *bool `json:"phEnabled,omitempty"`
	SodiumAdsorptionRatioEnabled   *bool `json:"sodiumAdsorptionRatioEnabled,omitempty"`
	SoilColorEnabled               *bool `json:"soilColorEnabled,omitempty"`
	SoilOrganicCarbonMatterEnabled *bool `json:"soilOrganicCarbonMatterEnabled,omitempty"`
	SoilStructureEnabled           *bool `json:"soilStructureEnabled,omitempty"`
	SoilTextureEnabled             *bool `json:"soilTextureEnabled,omitempty"`
}

// DepthDependentSoilData holds the measurements recorded for one sampling
// band, keyed by its interval bounds.
type DepthDependentSoilData struct {
	DepthInterval DepthInterval `json:"depthInterval"`

	Carbonates         *string  `json:"carbonates,omitempty"`
	ClayPercent        *int     `json:"clayPercent,omitempty"`
	ColorChroma        *float64 `json:"colorChroma,omitempty"`
	ColorHue           *float64 `json:"colorHue,omitempty"`
	ColorValue         *float64 `json:"colorValue,omitempty"`
	Conductivity       *float64 `json:"conductivity,omitempty"`
	Ph                 *float64 `json:"ph,omitempty"`
	RockFragmentVolume *string  `json:"rockFragmentVolume,omitempty"`
	SoilOrganicCarbon  *float64 `json:"soilOrganicCarbon,omitempty"`
	Structure          *string  `json:"structure,omitempty"`
	Texture            *string  `json:"texture,omitempty"`
}

// SoilMetadata is the second synchronizable per-site collection: the user's
// ratings of suggested soil matches. It rides through the same sync engine as
// SoilData but has no nested interval collections, so its push payload is the
// full ratings list rather than a diff.
type SoilMetadata struct {
	UserRatings []UserRating `json:"userRatings"`
}

// UserRating is a user's judgement of one suggested soil match.
// A nil Rating means the user has not rated the match; unrated entries are
// excluded from push payloads.
type UserRating struct {
	SoilMatchID string `json:"soilMatchId"`
	Rating      *int   `json:"rating"`
}

// Project groups sites; Site is the per-location entity that soil data and
// metadata hang off of. Both are server-owned: they arrive via pull and are
// never mutated locally by the sync engine.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Site is one observed field location.
type Site struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId,omitempty"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

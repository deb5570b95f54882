// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package models

// SyncFailureReason is the closed set of per-entity rejection reasons a push
// response can carry. Reasons are data, not errors: a partial-batch failure
// is a routine outcome.
type SyncFailureReason string

const (
	// FailureDoesNotExist: the site is unknown to the server (deleted
	// remotely, or never created).
	FailureDoesNotExist SyncFailureReason = "DOES_NOT_EXIST"

	// FailureNotAllowed: the authenticated user may not modify the site.
	FailureNotAllowed SyncFailureReason = "NOT_ALLOWED"

	// FailureInvalidData: the entry failed server-side validation.
	FailureInvalidData SyncFailureReason = "INVALID_DATA"
)

// SoilDataPushRequest is the batch push payload for the soil data
// collection. The batch is all-or-nothing at the transport level and
// per-entry at the semantic level.
type SoilDataPushRequest struct {
	Entries []SoilDataPushEntry `json:"soilDataEntries"`
}

// SoilDataPushEntry carries one site's diff plus the revision observed
// locally when the push was initiated, echoed back for correlation.
type SoilDataPushEntry struct {
	SiteID     string            `json:"siteId"`
	RevisionID RevisionID        `json:"revisionId"`
	SoilData   SoilDataPushInput `json:"soilData"`
}

// SoilDataPushInput is the wire form of a SoilDataChanges diff: only changed
// scalar fields, only changed or new bands, and the bounds of deleted bands.
type SoilDataPushInput struct {
	FieldUpdates          map[string]any        `json:"fieldUpdates"`
	DepthIntervals        []DepthIntervalUpdate `json:"depthIntervals"`
	DeletedDepthIntervals []DepthInterval       `json:"deletedDepthIntervals"`
	DepthDependentData    []DepthIntervalUpdate `json:"depthDependentData"`
}

// DepthIntervalUpdate carries the changed fields of one sampling band,
// identified by its bounds.
type DepthIntervalUpdate struct {
	DepthInterval DepthInterval  `json:"depthInterval"`
	FieldUpdates  map[string]any `json:"fieldUpdates"`
}

// SoilDataPushResponse carries exactly one result entry per request entry;
// the server never drops entities from the response.
type SoilDataPushResponse struct {
	Entries []SoilDataPushResponseEntry `json:"soilDataEntries"`
}

// SoilDataPushResponseEntry is the per-site outcome: either the full
// authoritative post-push soil data, or a rejection reason.
type SoilDataPushResponseEntry struct {
	SiteID string             `json:"siteId"`
	Result SoilDataPushResult `json:"result"`
}

// SoilDataPushResult holds one of SoilData (success) or Reason (failure).
type SoilDataPushResult struct {
	SoilData *SoilData         `json:"soilData,omitempty"`
	Reason   SyncFailureReason `json:"reason,omitempty"`
}

// SoilMetadataPushRequest is the batch push payload for the metadata
// collection. Metadata carries no nested collections, so each entry is the
// site's full rated-matches list rather than a diff.
type SoilMetadataPushRequest struct {
	Entries []SoilMetadataPushEntry `json:"soilMetadataEntries"`
}

// SoilMetadataPushEntry is one site's rated soil matches.
type SoilMetadataPushEntry struct {
	SiteID      string       `json:"siteId"`
	RevisionID  RevisionID   `json:"revisionId"`
	UserRatings []UserRating `json:"userRatings"`
}

// SoilMetadataPushResponse mirrors SoilDataPushResponse for metadata.
type SoilMetadataPushResponse struct {
	Entries []SoilMetadataPushResponseEntry `json:"soilMetadataEntries"`
}

// SoilMetadataPushResponseEntry is the per-site metadata push outcome.
type SoilMetadataPushResponseEntry struct {
	SiteID string                 `json:"siteId"`
	Result SoilMetadataPushResult `json:"result"`
}

// SoilMetadataPushResult holds one of SoilMetadata or Reason.
type SoilMetadataPushResult struct {
	SoilMetadata *SoilMetadata     `json:"soilMetadata,omitempty"`
	Reason       SyncFailureReason `json:"reason,omitempty"`
}

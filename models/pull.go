// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Soilstack Authors

package models

// PullResponse is the full authoritative snapshot of everything the
// authenticated user can access. A pull response fully replaces local cached
// copies for the entities it covers, which is why the pull controller never
// dispatches a pull while unsynced local edits exist.
type PullResponse struct {
	Projects []Project `json:"projects"`
	Sites    []Site    `json:"sites"`

	// SoilData and SoilMetadata are keyed by site id.
	SoilData     map[string]SoilData     `json:"soilData"`
	SoilMetadata map[string]SoilMetadata `json:"soilMetadata"`
}

package models

import (
	"time"
)

// MaintenanceFlagName is the flag the public site reads to gate itself
// into a maintenance-mode display.
const MaintenanceFlagName = "maintenance"

// FeatureFlag represents a named toggle. Name is globally unique.
type FeatureFlag struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Enabled     bool      `json:"enabled" db:"enabled"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// FeatureFlagInput is the create payload for a feature flag
type FeatureFlagInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// FeatureFlagPatch is the partial-update payload for a feature flag.
// A bare {"enabled": true} body toggles the flag without resupplying
// the rest of the record.
type FeatureFlagPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Enabled     *bool   `json:"enabled"`
}

// Fields returns the storage columns touched by the patch
func (p *FeatureFlagPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Enabled != nil {
		fields["enabled"] = *p.Enabled
	}
	return fields
}

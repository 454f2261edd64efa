package models

import (
	"time"
)

// WorkHistory represents one employment entry. A nil EndDate means the
// position is current.
type WorkHistory struct {
	ID           int64      `json:"id" db:"id"`
	Company      string     `json:"company" db:"company"`
	Position     string     `json:"position" db:"position"`
	Location     string     `json:"location" db:"location"`
	StartDate    string     `json:"start_date" db:"start_date"`
	EndDate      *string    `json:"end_date" db:"end_date"`
	Achievements StringList `json:"achievements" db:"achievements"`
	Technologies StringList `json:"technologies" db:"technologies"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// WorkHistoryInput is the create payload for a work history entry
type WorkHistoryInput struct {
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Location     string     `json:"location"`
	StartDate    string     `json:"start_date"`
	EndDate      *string    `json:"end_date"`
	Achievements StringList `json:"achievements"`
	Technologies StringList `json:"technologies"`
}

// WorkHistoryPatch is the partial-update payload for a work history entry
type WorkHistoryPatch struct {
	Company      *string     `json:"company"`
	Position     *string     `json:"position"`
	Location     *string     `json:"location"`
	StartDate    *string     `json:"start_date"`
	EndDate      *string     `json:"end_date"`
	Achievements *StringList `json:"achievements"`
	Technologies *StringList `json:"technologies"`
}

// Fields returns the storage columns touched by the patch. An
// empty-string end date is stored as null rather than parsed.
func (p *WorkHistoryPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Company != nil {
		fields["company"] = *p.Company
	}
	if p.Position != nil {
		fields["position"] = *p.Position
	}
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	if p.StartDate != nil {
		fields["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		fields["end_date"] = NullableDate(*p.EndDate)
	}
	if p.Achievements != nil {
		fields["achievements"] = *p.Achievements
	}
	if p.Technologies != nil {
		fields["technologies"] = *p.Technologies
	}
	return fields
}

// NullableDate maps an empty date string to SQL null
func NullableDate(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

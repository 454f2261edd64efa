package models

import (
	"time"
)

// Education represents one education entry. Grade is surfaced over the
// legacy "gpa" storage column.
type Education struct {
	ID           int64      `json:"id" db:"id"`
	Institution  string     `json:"institution" db:"institution"`
	Degree       string     `json:"degree" db:"degree"`
	FieldOfStudy string     `json:"field_of_study" db:"field_of_study"`
	StartDate    string     `json:"start_date" db:"start_date"`
	EndDate      *string    `json:"end_date" db:"end_date"`
	Grade        string     `json:"grade" db:"gpa"`
	Achievements StringList `json:"achievements" db:"achievements"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// EducationInput is the create payload for an education entry
type EducationInput struct {
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	StartDate    string     `json:"start_date"`
	EndDate      *string    `json:"end_date"`
	Grade        string     `json:"grade"`
	Achievements StringList `json:"achievements"`
}

// EducationPatch is the partial-update payload for an education entry
type EducationPatch struct {
	Institution  *string     `json:"institution"`
	Degree       *string     `json:"degree"`
	FieldOfStudy *string     `json:"field_of_study"`
	StartDate    *string     `json:"start_date"`
	EndDate      *string     `json:"end_date"`
	Grade        *string     `json:"grade"`
	Achievements *StringList `json:"achievements"`
}

// Fields returns the storage columns touched by the patch
func (p *EducationPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Institution != nil {
		fields["institution"] = *p.Institution
	}
	if p.Degree != nil {
		fields["degree"] = *p.Degree
	}
	if p.FieldOfStudy != nil {
		fields["field_of_study"] = *p.FieldOfStudy
	}
	if p.StartDate != nil {
		fields["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		fields["end_date"] = NullableDate(*p.EndDate)
	}
	if p.Grade != nil {
		fields["gpa"] = *p.Grade
	}
	if p.Achievements != nil {
		fields["achievements"] = *p.Achievements
	}
	return fields
}

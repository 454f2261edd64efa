package models

import (
	"time"
)

// Project represents a portfolio project
type Project struct {
	ID           int64      `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	Description  string     `json:"description" db:"description"`
	Date         string     `json:"date" db:"date"`
	Featured     bool       `json:"featured" db:"featured"`
	Technologies StringList `json:"technologies" db:"technologies"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// ProjectInput is the create payload for a project
type ProjectInput struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Date         string     `json:"date"`
	Featured     bool       `json:"featured"`
	Technologies StringList `json:"technologies"`
}

// ProjectPatch is the partial-update payload for a project. Pointer
// fields distinguish omitted from explicitly-set values.
type ProjectPatch struct {
	Title        *string     `json:"title"`
	Description  *string     `json:"description"`
	Date         *string     `json:"date"`
	Featured     *bool       `json:"featured"`
	Technologies *StringList `json:"technologies"`
}

// Fields returns the storage columns touched by the patch
func (p *ProjectPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Date != nil {
		fields["date"] = *p.Date
	}
	if p.Featured != nil {
		fields["featured"] = *p.Featured
	}
	if p.Technologies != nil {
		fields["technologies"] = *p.Technologies
	}
	return fields
}

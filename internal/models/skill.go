package models

import (
	"time"
)

// Skill represents a named skill with a proficiency level
type Skill struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Category  string    `json:"category" db:"category"`
	Level     string    `json:"level" db:"level"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ValidSkillLevels defines allowed skill proficiency levels
var ValidSkillLevels = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
	"expert":       true,
}

// SkillInput is the create payload for a skill
type SkillInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
}

// SkillPatch is the partial-update payload for a skill
type SkillPatch struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Level    *string `json:"level"`
}

// Fields returns the storage columns touched by the patch
func (p *SkillPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	if p.Level != nil {
		fields["level"] = *p.Level
	}
	return fields
}

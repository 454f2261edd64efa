package models

import (
	"time"
)

// LearningItem represents an item on the learning log
type LearningItem struct {
	ID                  int64      `json:"id" db:"id"`
	Title               string     `json:"title" db:"title"`
	Category            string     `json:"category" db:"category"`
	Progress            int        `json:"progress" db:"progress"`
	Status              string     `json:"status" db:"status"`
	StartDate           string     `json:"start_date" db:"start_date"`
	EstimatedCompletion *string    `json:"estimated_completion" db:"estimated_completion"`
	Resources           StringList `json:"resources" db:"resources"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// ValidLearningStatuses defines allowed learning item statuses
var ValidLearningStatuses = map[string]bool{
	"not_started": true,
	"in_progress": true,
	"completed":   true,
	"paused":      true,
}

// LearningItemInput is the create payload for a learning item
type LearningItemInput struct {
	Title               string     `json:"title"`
	Category            string     `json:"category"`
	Progress            int        `json:"progress"`
	Status              string     `json:"status"`
	StartDate           string     `json:"start_date"`
	EstimatedCompletion *string    `json:"estimated_completion"`
	Resources           StringList `json:"resources"`
}

// LearningItemPatch is the partial-update payload for a learning item
type LearningItemPatch struct {
	Title               *string     `json:"title"`
	Category            *string     `json:"category"`
	Progress            *int        `json:"progress"`
	Status              *string     `json:"status"`
	StartDate           *string     `json:"start_date"`
	EstimatedCompletion *string     `json:"estimated_completion"`
	Resources           *StringList `json:"resources"`
}

// Fields returns the storage columns touched by the patch. An
// empty-string estimated completion is stored as null rather than
// parsed.
func (p *LearningItemPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	if p.Progress != nil {
		fields["progress"] = *p.Progress
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	if p.StartDate != nil {
		fields["start_date"] = *p.StartDate
	}
	if p.EstimatedCompletion != nil {
		fields["estimated_completion"] = NullableDate(*p.EstimatedCompletion)
	}
	if p.Resources != nil {
		fields["resources"] = *p.Resources
	}
	return fields
}

package models

import (
	"time"
)

// DateLayout is the storage format for content date fields
const DateLayout = "2006-01-02"

// Certification represents a professional certification. IsExpired is
// derived from ExpiryDate at read time and never persisted.
type Certification struct {
	ID         int64      `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Issuer     string     `json:"issuer" db:"issuer"`
	IssueDate  string     `json:"issue_date" db:"issue_date"`
	ExpiryDate *string    `json:"expiry_date" db:"expiry_date"`
	Skills     StringList `json:"skills" db:"skills"`
	IsExpired  bool       `json:"is_expired" db:"-"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// ComputeExpired sets the derived expiry indicator relative to now.
// An absent or unparseable expiry date means not expired.
func (c *Certification) ComputeExpired(now time.Time) {
	c.IsExpired = false
	if c.ExpiryDate == nil || *c.ExpiryDate == "" {
		return
	}
	expiry, err := time.Parse(DateLayout, *c.ExpiryDate)
	if err != nil {
		return
	}
	c.IsExpired = expiry.Before(now)
}

// CertificationInput is the create payload for a certification
type CertificationInput struct {
	Name       string     `json:"name"`
	Issuer     string     `json:"issuer"`
	IssueDate  string     `json:"issue_date"`
	ExpiryDate *string    `json:"expiry_date"`
	Skills     StringList `json:"skills"`
}

// CertificationPatch is the partial-update payload for a certification
type CertificationPatch struct {
	Name       *string     `json:"name"`
	Issuer     *string     `json:"issuer"`
	IssueDate  *string     `json:"issue_date"`
	ExpiryDate *string     `json:"expiry_date"`
	Skills     *StringList `json:"skills"`
}

// Fields returns the storage columns touched by the patch
func (p *CertificationPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Issuer != nil {
		fields["issuer"] = *p.Issuer
	}
	if p.IssueDate != nil {
		fields["issue_date"] = *p.IssueDate
	}
	if p.ExpiryDate != nil {
		fields["expiry_date"] = NullableDate(*p.ExpiryDate)
	}
	if p.Skills != nil {
		fields["skills"] = *p.Skills
	}
	return fields
}

package models

import (
	"time"
)

// BlogPost represents a blog post. Slug is globally unique and derived
// from the title when not supplied.
type BlogPost struct {
	ID        int64      `json:"id" db:"id"`
	Slug      string     `json:"slug" db:"slug"`
	Title     string     `json:"title" db:"title"`
	Excerpt   string     `json:"excerpt" db:"excerpt"`
	Content   string     `json:"content" db:"content"`
	Author    string     `json:"author" db:"author"`
	Category  string     `json:"category" db:"category"`
	Published bool       `json:"published" db:"published"`
	Featured  bool       `json:"featured" db:"featured"`
	Tags      StringList `json:"tags" db:"tags"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// BlogPostInput is the create payload for a blog post
type BlogPostInput struct {
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	Excerpt   string     `json:"excerpt"`
	Content   string     `json:"content"`
	Author    string     `json:"author"`
	Category  string     `json:"category"`
	Published bool       `json:"published"`
	Featured  bool       `json:"featured"`
	Tags      StringList `json:"tags"`
}

// BlogPostPatch is the partial-update payload for a blog post
type BlogPostPatch struct {
	Slug      *string     `json:"slug"`
	Title     *string     `json:"title"`
	Excerpt   *string     `json:"excerpt"`
	Content   *string     `json:"content"`
	Author    *string     `json:"author"`
	Category  *string     `json:"category"`
	Published *bool       `json:"published"`
	Featured  *bool       `json:"featured"`
	Tags      *StringList `json:"tags"`
}

// Fields returns the storage columns touched by the patch
func (p *BlogPostPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if p.Slug != nil {
		fields["slug"] = *p.Slug
	}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Excerpt != nil {
		fields["excerpt"] = *p.Excerpt
	}
	if p.Content != nil {
		fields["content"] = *p.Content
	}
	if p.Author != nil {
		fields["author"] = *p.Author
	}
	if p.Category != nil {
		fields["category"] = *p.Category
	}
	if p.Published != nil {
		fields["published"] = *p.Published
	}
	if p.Featured != nil {
		fields["featured"] = *p.Featured
	}
	if p.Tags != nil {
		fields["tags"] = *p.Tags
	}
	return fields
}

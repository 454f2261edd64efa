package models

import (
	"time"
)

// AnalyticsEvent represents one page-visit record. Rows are keyed by
// (session_id, page_path) so repeated reports from the same visit
// accumulate into one row.
type AnalyticsEvent struct {
	ID            int64     `json:"id" db:"id"`
	PagePath      string    `json:"page_path" db:"page_path"`
	SessionID     string    `json:"session_id" db:"session_id"`
	VisitDuration int       `json:"visit_duration" db:"visit_duration"`
	Referrer      string    `json:"referrer" db:"referrer"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// TrackInput is the public visit-report payload
type TrackInput struct {
	PagePath      string `json:"page_path"`
	SessionID     string `json:"session_id"`
	VisitDuration int    `json:"visit_duration"`
	Referrer      string `json:"referrer"`
}

// PageStat aggregates visits for one page
type PageStat struct {
	PagePath    string  `json:"page_path"`
	Visits      int     `json:"visits"`
	AvgDuration float64 `json:"avg_duration"`
}

// AnalyticsOverview is the admin summary report
type AnalyticsOverview struct {
	TotalVisits    int        `json:"total_visits"`
	UniqueSessions int        `json:"unique_sessions"`
	AvgDuration    float64    `json:"avg_duration"`
	TopPages       []PageStat `json:"top_pages"`
}

// AnalyticsDetailed is the admin per-page report with recent events
type AnalyticsDetailed struct {
	Pages  []PageStat       `json:"pages"`
	Recent []AnalyticsEvent `json:"recent"`
}

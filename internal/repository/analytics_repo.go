package repository

import (
	"context"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// analyticsRepo is the concrete implementation of AnalyticsRepository
type analyticsRepo struct {
	db *database.DB
}

// NewAnalyticsRepo creates a new analytics repository
func NewAnalyticsRepo(db *database.DB) AnalyticsRepository {
	return &analyticsRepo{db: db}
}

// UpsertVisit records a page visit. Rows are keyed by
// (session_id, page_path): a repeat report for the same visit updates
// the stored duration when a nonzero duration is supplied instead of
// inserting a second row.
func (r *analyticsRepo) UpsertVisit(ctx context.Context, in *models.TrackInput) error {
	query := `
		INSERT INTO analytics_events (session_id, page_path, visit_duration, referrer, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (session_id, page_path)
		DO UPDATE SET visit_duration = EXCLUDED.visit_duration
		WHERE EXCLUDED.visit_duration > 0
	`
	_, err := r.db.ExecContext(ctx, query, in.SessionID, in.PagePath, in.VisitDuration, in.Referrer)
	return err
}

// Overview aggregates totals across all recorded visits
func (r *analyticsRepo) Overview(ctx context.Context) (*models.AnalyticsOverview, error) {
	overview := &models.AnalyticsOverview{TopPages: []models.PageStat{}}

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT session_id), COALESCE(AVG(visit_duration), 0)
		FROM analytics_events
	`).Scan(&overview.TotalVisits, &overview.UniqueSessions, &overview.AvgDuration)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT page_path, COUNT(*), COALESCE(AVG(visit_duration), 0)
		FROM analytics_events
		GROUP BY page_path
		ORDER BY COUNT(*) DESC
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stat models.PageStat
		if err := rows.Scan(&stat.PagePath, &stat.Visits, &stat.AvgDuration); err != nil {
			return nil, err
		}
		overview.TopPages = append(overview.TopPages, stat)
	}
	return overview, rows.Err()
}

// Detailed returns per-page stats plus the most recent raw events
func (r *analyticsRepo) Detailed(ctx context.Context, recentLimit int) (*models.AnalyticsDetailed, error) {
	detailed := &models.AnalyticsDetailed{
		Pages:  []models.PageStat{},
		Recent: []models.AnalyticsEvent{},
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT page_path, COUNT(*), COALESCE(AVG(visit_duration), 0)
		FROM analytics_events
		GROUP BY page_path
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stat models.PageStat
		if err := rows.Scan(&stat.PagePath, &stat.Visits, &stat.AvgDuration); err != nil {
			return nil, err
		}
		detailed.Pages = append(detailed.Pages, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recent, err := r.db.QueryContext(ctx, `
		SELECT id, page_path, session_id, visit_duration, referrer, created_at
		FROM analytics_events
		ORDER BY created_at DESC
		LIMIT $1
	`, recentLimit)
	if err != nil {
		return nil, err
	}
	defer recent.Close()

	for recent.Next() {
		var event models.AnalyticsEvent
		if err := recent.Scan(
			&event.ID, &event.PagePath, &event.SessionID,
			&event.VisitDuration, &event.Referrer, &event.CreatedAt,
		); err != nil {
			return nil, err
		}
		detailed.Recent = append(detailed.Recent, event)
	}
	return detailed, recent.Err()
}

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Feedback is one persisted feedback record.
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	Rating    int       `json:"rating"`
	Category  string    `json:"category"`
	Comment   string    `json:"comment,omitempty"`
	Helpful   bool      `json:"helpful"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackSummary aggregates stored feedback for reporting.
type FeedbackSummary struct {
	Total         int            `json:"total"`
	AverageRating float64        `json:"average_rating"`
	HelpfulCount  int            `json:"helpful_count"`
	ByCategory    map[string]int `json:"by_category"`
}

// SaveFeedback stores a feedback submission and returns its generated ID.
func (db *DB) SaveFeedback(ctx context.Context, req *types.FeedbackRequest) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO feedback (id, rating, category, comment, helpful)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, req.Rating, req.Category, req.Comment, req.Helpful,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	return id, nil
}

// FeedbackSummary returns aggregate stats across all stored feedback.
func (db *DB) FeedbackSummary(ctx context.Context) (*FeedbackSummary, error) {
	summary := &FeedbackSummary{ByCategory: make(map[string]int)}

	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(AVG(rating), 0),
		        COUNT(*) FILTER (WHERE helpful)
		 FROM feedback`,
	).Scan(&summary.Total, &summary.AverageRating, &summary.HelpfulCount)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize feedback: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT category, COUNT(*) FROM feedback GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to count feedback categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		summary.ByCategory[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category counts: %w", err)
	}

	return summary, nil
}

// RecentFeedback returns the most recent feedback records, newest first.
func (db *DB) RecentFeedback(ctx context.Context, limit int) ([]Feedback, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, rating, category, comment, helpful, created_at
		 FROM feedback ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	records := make([]Feedback, 0, limit)
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.Rating, &f.Category, &f.Comment, &f.Helpful, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		records = append(records, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback rows: %w", err)
	}
	return records, nil
}

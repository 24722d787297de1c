package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/cv-scorer/internal/types"
)

// SaveAnalysis persists a CV with its scores and report in one transaction.
// Any insert failure rolls the whole save back; history never sees a CV
// without its score and report rows.
func (db *DB) SaveAnalysis(ctx context.Context, userID uuid.UUID, cvText string, result *types.AnalysisResult) (uuid.UUID, error) {
	parsedJSON, err := json.Marshal(result.ParsedCV)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal parsed CV: %w", err)
	}
	signalsJSON, err := json.Marshal(result.Signals)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal signals: %w", err)
	}
	strengthsJSON, err := json.Marshal(result.Report.Strengths)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal strengths: %w", err)
	}
	weaknessesJSON, err := json.Marshal(result.Report.Weaknesses)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal weaknesses: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var cvID uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO cvs (user_id, cv_text, parsed_cv)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, cvText, parsedJSON,
	).Scan(&cvID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert cv: %w", err)
	}

	scores := result.Scores
	_, err = tx.Exec(ctx,
		`INSERT INTO cv_scores (cv_id, structure, keywords, impact, alignment, clarity, overall, ats_risk_level, signals)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		cvID, scores.Structure, scores.Keywords, scores.Impact, scores.Alignment,
		scores.Clarity, scores.Overall, scores.ATSRiskLevel, signalsJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert scores: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO cv_reports (cv_id, strengths, weaknesses, ats_risk_explanation)
		 VALUES ($1, $2, $3, $4)`,
		cvID, strengthsJSON, weaknessesJSON, result.Report.ATSRiskExplanation,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert report: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit analysis: %w", err)
	}
	return cvID, nil
}

// ListHistory retrieves a user's past analyses, newest first.
func (db *DB) ListHistory(ctx context.Context, userID uuid.UUID, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT c.id, s.structure, s.keywords, s.impact, s.alignment, s.clarity,
		        s.overall, s.ats_risk_level, r.strengths, r.weaknesses,
		        r.ats_risk_explanation, c.created_at
		 FROM cvs c
		 JOIN cv_scores s ON s.cv_id = c.id
		 JOIN cv_reports r ON r.cv_id = c.id
		 WHERE c.user_id = $1
		 ORDER BY c.created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		var strengthsJSON, weaknessesJSON []byte
		if err := rows.Scan(
			&entry.CVID, &entry.Structure, &entry.Keywords, &entry.Impact,
			&entry.Alignment, &entry.Clarity, &entry.Overall, &entry.ATSRiskLevel,
			&strengthsJSON, &weaknessesJSON, &entry.ATSRiskExplanation, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		if err := json.Unmarshal(strengthsJSON, &entry.Strengths); err != nil {
			return nil, fmt.Errorf("failed to decode strengths: %w", err)
		}
		if err := json.Unmarshal(weaknessesJSON, &entry.Weaknesses); err != nil {
			return nil, fmt.Errorf("failed to decode weaknesses: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// DeleteCV removes a stored CV and its score and report rows via cascade.
func (db *DB) DeleteCV(ctx context.Context, cvID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM cvs WHERE id = $1`, cvID)
	if err != nil {
		return fmt.Errorf("failed to delete cv: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("cv not found: %s", cvID)
	}
	return nil
}

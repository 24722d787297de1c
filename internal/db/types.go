package db

import (
	"time"

	"github.com/google/uuid"
)

// CVRecord is a stored CV with its analysis artifacts.
type CVRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CVText    string    `json:"cv_text"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry is one past analysis as returned by the history listing:
// the score breakdown plus the narrative report, newest first.
type HistoryEntry struct {
	CVID               uuid.UUID `json:"cv_id"`
	Structure          int       `json:"structure"`
	Keywords           int       `json:"keywords"`
	Impact             int       `json:"impact"`
	Alignment          int       `json:"alignment"`
	Clarity            int       `json:"clarity"`
	Overall            int       `json:"overall"`
	ATSRiskLevel       string    `json:"ats_risk_level"`
	Strengths          []string  `json:"strengths"`
	Weaknesses         []string  `json:"weaknesses"`
	ATSRiskExplanation string    `json:"ats_risk_explanation"`
	CreatedAt          time.Time `json:"created_at"`
}

// Package types defines the shared data structures for the CV scoring service.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Profile is a registered candidate profile, keyed by email.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	TargetRole    string    `json:"target_role"`
	Industry      string    `json:"industry,omitempty"`
	CareerLevel   string    `json:"career_level,omitempty"`
	TargetCountry string    `json:"target_country,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UpsertProfileRequest creates or refreshes a profile by email.
type UpsertProfileRequest struct {
	Email         string `json:"email" validate:"required,email"`
	FullName      string `json:"full_name" validate:"required,min=1"`
	TargetRole    string `json:"target_role" validate:"required,min=1"`
	Industry      string `json:"industry,omitempty"`
	CareerLevel   string `json:"career_level,omitempty"`
	TargetCountry string `json:"target_country,omitempty"`
}

// Validate checks the request against its validation tags.
func (r *UpsertProfileRequest) Validate() error {
	return validator.New().Struct(r)
}

// TargetContext describes what the CV is being scored against.
type TargetContext struct {
	TargetRole    string `json:"target_role,omitempty"`
	Industry      string `json:"industry,omitempty"`
	CareerLevel   string `json:"career_level,omitempty"`
	TargetCountry string `json:"target_country,omitempty"`
}

// AnalyzeRequest is the payload for a full pipeline run.
type AnalyzeRequest struct {
	CVText  string        `json:"cv_text" validate:"required,min=1"`
	Context TargetContext `json:"context"`
}

// Validate checks the request against its validation tags.
func (r *AnalyzeRequest) Validate() error {
	return validator.New().Struct(r)
}

// Optimize request types select what gets rewritten.
const (
	OptimizeTypeSummary = "summary"
	OptimizeTypeBullets = "bullets"
)

// OptimizeRequest is the payload for a rewrite run.
type OptimizeRequest struct {
	Type    string        `json:"type" validate:"required,oneof=summary bullets"`
	Content string        `json:"content,omitempty"`
	CV      *ParsedCV     `json:"cv,omitempty"`
	Context TargetContext `json:"context"`
}

// Validate checks the request against its validation tags.
func (r *OptimizeRequest) Validate() error {
	return validator.New().Struct(r)
}

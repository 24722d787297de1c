package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertProfileRequestValidate(t *testing.T) {
	valid := &UpsertProfileRequest{
		Email:      "candidate@example.com",
		FullName:   "Test Candidate",
		TargetRole: "Backend Engineer",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  UpsertProfileRequest
	}{
		{"missing email", UpsertProfileRequest{FullName: "A", TargetRole: "B"}},
		{"bad email", UpsertProfileRequest{Email: "not-an-email", FullName: "A", TargetRole: "B"}},
		{"missing full name", UpsertProfileRequest{Email: "a@b.com", TargetRole: "B"}},
		{"missing target role", UpsertProfileRequest{Email: "a@b.com", FullName: "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestAnalyzeRequestValidate(t *testing.T) {
	valid := &AnalyzeRequest{CVText: "some cv text"}
	assert.NoError(t, valid.Validate())

	empty := &AnalyzeRequest{}
	require.Error(t, empty.Validate())
}

func TestOptimizeRequestValidate(t *testing.T) {
	summary := &OptimizeRequest{Type: OptimizeTypeSummary, Content: "text"}
	assert.NoError(t, summary.Validate())

	bullets := &OptimizeRequest{Type: OptimizeTypeBullets, CV: &ParsedCV{}}
	assert.NoError(t, bullets.Validate())

	unknown := &OptimizeRequest{Type: "everything"}
	assert.Error(t, unknown.Validate())

	missing := &OptimizeRequest{}
	assert.Error(t, missing.Validate())
}

//go:build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-scorer/internal/types"
)

// setupTestDB connects to the local DB for integration testing.
// Skipped when TEST_DATABASE_URL is not set or the connection fails.
func setupTestDB(t *testing.T) *DB {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	return db
}

func createTestProfile(t *testing.T, db *DB, ctx context.Context) *types.Profile {
	t.Helper()
	profile, err := db.UpsertProfile(ctx, &types.UpsertProfileRequest{
		Email:      "test-" + uuid.New().String() + "@example.com",
		FullName:   "Test Candidate",
		TargetRole: "Backend Engineer",
	})
	require.NoError(t, err)
	return profile
}

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		ParsedCV: &types.ParsedCV{
			ProfessionalSummary: "Backend engineer.",
			Skills:              []string{"Go", "Postgres"},
		},
		Signals: &types.Signals{
			Structure: types.StructureSignals{
				SectionOrderQuality:   types.QualityGood,
				FormattingConsistency: types.QualityGood,
				ATSRiskElements:       []string{},
			},
		},
		Scores: &types.Scores{
			Structure: 20, Keywords: 17, Impact: 20, Alignment: 20, Clarity: 17,
			Overall: 94, ATSRiskLevel: types.RiskLow,
		},
		Report: &types.Report{
			Strengths:          []string{"a", "b", "c"},
			Weaknesses:         []string{"d", "e", "f"},
			ATSRiskExplanation: "Low risk.",
		},
	}
}

func TestIntegration_UpsertProfile(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	email := "test-upsert-" + uuid.New().String() + "@example.com"
	first, err := db.UpsertProfile(ctx, &types.UpsertProfileRequest{
		Email:      email,
		FullName:   "First Name",
		TargetRole: "Backend Engineer",
	})
	require.NoError(t, err)
	defer db.DeleteProfile(ctx, first.ID)
	assert.NotEqual(t, uuid.Nil, first.ID)

	// Second upsert with the same email keeps the id and refreshes fields.
	second, err := db.UpsertProfile(ctx, &types.UpsertProfileRequest{
		Email:      email,
		FullName:   "Updated Name",
		TargetRole: "Staff Engineer",
		Industry:   "fintech",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Updated Name", second.FullName)
	assert.Equal(t, "Staff Engineer", second.TargetRole)
	assert.Equal(t, "fintech", second.Industry)
}

func TestIntegration_GetProfileByEmail(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	profile := createTestProfile(t, db, ctx)
	defer db.DeleteProfile(ctx, profile.ID)

	got, err := db.GetProfileByEmail(ctx, profile.Email)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, profile.ID, got.ID)

	// Unknown email returns nil, nil.
	missing, err := db.GetProfileByEmail(ctx, "nobody-"+uuid.New().String()+"@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIntegration_SaveAnalysisAndHistory(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	profile := createTestProfile(t, db, ctx)
	defer db.DeleteProfile(ctx, profile.ID)

	first, err := db.SaveAnalysis(ctx, profile.ID, "cv text one", sampleResult())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first)

	second := sampleResult()
	second.Scores.Overall = 40
	second.Scores.ATSRiskLevel = types.RiskHigh
	secondID, err := db.SaveAnalysis(ctx, profile.ID, "cv text two", second)
	require.NoError(t, err)

	entries, err := db.ListHistory(ctx, profile.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, secondID, entries[0].CVID)
	assert.Equal(t, 40, entries[0].Overall)
	assert.Equal(t, types.RiskHigh, entries[0].ATSRiskLevel)
	assert.Equal(t, first, entries[1].CVID)
	assert.Equal(t, []string{"a", "b", "c"}, entries[1].Strengths)

	// Limit applies.
	limited, err := db.ListHistory(ctx, profile.ID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, secondID, limited[0].CVID)
}

func TestIntegration_HistoryUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	entries, err := db.ListHistory(ctx, uuid.New(), 20)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

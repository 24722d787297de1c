package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructureSignals(t *testing.T) {
	valid := `{
		"section_order_quality": "good",
		"formatting_consistency": "average",
		"ats_risk_elements": ["tables"],
		"has_contact_info": true,
		"section_count": 5
	}`

	assert.NoError(t, Validate(StructureSignals, valid))
}

func TestValidateRejectsUnknownEnumValue(t *testing.T) {
	invalid := `{
		"section_order_quality": "excellent",
		"formatting_consistency": "good",
		"ats_risk_elements": [],
		"has_contact_info": true,
		"section_count": 5
	}`

	err := Validate(StructureSignals, invalid)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, StructureSignals, validationErr.Schema)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateRejectsMissingRequiredField(t *testing.T) {
	invalid := `{"readability": "good", "summary_quality": "good"}`

	err := Validate(ClaritySignals, invalid)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	err := Validate(ParsedCV, `this is not json`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateReportShape(t *testing.T) {
	valid := `{
		"strengths": ["a", "b", "c"],
		"weaknesses": ["d", "e", "f"],
		"ats_risk_explanation": "fine"
	}`
	assert.NoError(t, Validate(Report, valid))

	// Exactly three strengths are required.
	twoStrengths := `{
		"strengths": ["a", "b"],
		"weaknesses": ["d", "e", "f"],
		"ats_risk_explanation": "fine"
	}`
	assert.Error(t, Validate(Report, twoStrengths))
}

func TestValidateUnknownSchema(t *testing.T) {
	err := Validate("no_such_schema", `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateOptimizedBullets(t *testing.T) {
	valid := `{
		"title": "Engineer",
		"company": "Acme",
		"bullet_points": ["Shipped the billing service"]
	}`
	assert.NoError(t, Validate(OptimizedBullets, valid))

	empty := `{"title": "Engineer", "company": "Acme", "bullet_points": []}`
	assert.Error(t, Validate(OptimizedBullets, empty))
}

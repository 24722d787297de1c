package types

// ParsedCV is the structured form of a raw CV text.
type ParsedCV struct {
	ProfessionalSummary string           `json:"professional_summary"`
	WorkExperience      []WorkExperience `json:"work_experience"`
	Education           string           `json:"education"`
	Skills              []string         `json:"skills"`
	Certifications      []string         `json:"certifications"`
	Tools               []string         `json:"tools"`
}

// WorkExperience is one employment entry with its bullet points.
type WorkExperience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Dates        string   `json:"dates"`
	BulletPoints []string `json:"bullet_points"`
}

package domain

// QuestionCount is the number of statements in the assessment.
const QuestionCount = 16

// Likert scale bounds.
const (
	MinAnswer = 1
	MaxAnswer = 5
)

type QuestionType string

const (
	QuestionDirect   QuestionType = "direct"
	QuestionIndirect QuestionType = "indirect"
)

type Question struct {
	ID   int          `json:"id" yaml:"id"`
	Text string       `json:"text" yaml:"text"`
	Type QuestionType `json:"type" yaml:"type"`
}

// Answers is indexed by question position, not by Question.ID.
// A zero slot means the question has not been answered yet.
type Answers []int

type GroupStyle string

const (
	GroupDirect   GroupStyle = "direct"
	GroupIndirect GroupStyle = "indirect"
	GroupMixed    GroupStyle = "mixed"
)

type LanguageGroup struct {
	Name      string     `json:"name" yaml:"name"`
	Languages string     `json:"languages" yaml:"languages"`
	Countries []string   `json:"countries" yaml:"countries"`
	Style     GroupStyle `json:"style" yaml:"style"`
	// baseScore = directPercent*DirectWeight + indirectPercent*IndirectWeight
	DirectWeight   float64 `json:"direct_weight" yaml:"direct_weight"`
	IndirectWeight float64 `json:"indirect_weight" yaml:"indirect_weight"`
}

// BaseScore blends the two axis percentages with the group's fixed coefficients.
func (g LanguageGroup) BaseScore(directPercent, indirectPercent float64) float64 {
	// explicit conversions round each product, so no fused multiply-add can split ties
	return float64(directPercent*g.DirectWeight) + float64(indirectPercent*g.IndirectWeight)
}

type MatchLevel string

const (
	MatchExcellent MatchLevel = "Excellent"
	MatchGood      MatchLevel = "Good"
	MatchModerate  MatchLevel = "Moderate"
	MatchLower     MatchLevel = "Lower"
)

type Leaning string

const (
	LeaningBalanced Leaning = "balanced"
	LeaningDirect   Leaning = "direct"
	LeaningIndirect Leaning = "indirect"
)

type Characteristics struct {
	CommApproach       float64 `json:"comm_approach"`
	RelationshipFocus  float64 `json:"relationship_focus"`
	ConflictResolution float64 `json:"conflict_resolution"`
	ContextSensitivity float64 `json:"context_sensitivity"`
}

// StyleSummary uses the theoretical-maximum scaling (35 and 45), not the
// share of the total used by ScoreResult.DirectPercentage.
type StyleSummary struct {
	DirectPercent   float64 `json:"direct_percent"`
	IndirectPercent float64 `json:"indirect_percent"`
	Difference      float64 `json:"difference"`
	Leaning         Leaning `json:"leaning"`
	Description     string  `json:"description"`
}

type GroupMatch struct {
	Group           LanguageGroup `json:"group"`
	BaseScore       float64       `json:"base_score"`
	MatchPercentage float64       `json:"match_percentage"`
	Level           MatchLevel    `json:"level"`
	TopMatch        bool          `json:"top_match"`
}

type Recommendation struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type ScoreResult struct {
	DirectScore        float64          `json:"direct_score"`
	IndirectScore      float64          `json:"indirect_score"`
	DirectPercentage   float64          `json:"direct_percentage"`
	IndirectPercentage float64          `json:"indirect_percentage"`
	Characteristics    Characteristics  `json:"characteristics"`
	Style              StyleSummary     `json:"style"`
	TopGroups          []GroupMatch     `json:"top_groups"`
	Interpretation     string           `json:"interpretation"`
	Recommendations    []Recommendation `json:"recommendations"`
}

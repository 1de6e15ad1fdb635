package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/domain"
)

const (
	// DefaultTopGroups is how many language groups survive the ranking.
	DefaultTopGroups    = 8
	// topMatchCount groups at the head of the ranking get emphasis.
	topMatchCount       = 3
	// strongPreferenceGap separates "strong" from "moderate" interpretations (raw score points).
	strongPreferenceGap = 10
	// balancedStyleGap is the axis-percentage gap below which a style is balanced.
	balancedStyleGap    = 15
)

// Engine computes ScoreResults. It only holds the immutable tables it was built
// with, so Compute is a pure function of its input.
type Engine struct {
	directPos   []int
	indirectPos []int
	directMax   float64
	indirectMax float64
	groups      []domain.LanguageGroup
	limit       int
}

// NewEngine builds an engine over the built-in question and language group tables.
func NewEngine() *Engine {
	return NewEngineWithGroups(domain.LanguageGroups())
}

// NewEngineWithGroups uses a custom language group table; question tagging still
// comes from the built-in questions.
func NewEngineWithGroups(groups []domain.LanguageGroup) *Engine {
	return &Engine{
		directPos:   domain.PositionsOf(domain.QuestionDirect),
		indirectPos: domain.PositionsOf(domain.QuestionIndirect),
		directMax:   float64(domain.MaxScore(domain.QuestionDirect)),
		indirectMax: float64(domain.MaxScore(domain.QuestionIndirect)),
		groups:      groups,
		limit:       DefaultTopGroups,
	}
}

// Compute scores a fully answered vector using the built-in tables.
func Compute(answers domain.Answers) (domain.ScoreResult, error) {
	return NewEngine().Compute(answers)
}

// Compute validates answers and derives every score shown on the results page.
func (e *Engine) Compute(answers domain.Answers) (domain.ScoreResult, error) {
	if err := Validate(answers); err != nil {
		return domain.ScoreResult{}, err
	}

	direct := sumAt(answers, e.directPos)
	indirect := sumAt(answers, e.indirectPos)
	total := direct + indirect

	// Rounded independently; the pair may add up to 99 or 101.
	res := domain.ScoreResult{
		DirectScore:        direct,
		IndirectScore:      indirect,
		DirectPercentage:   math.Round(direct / total * 100),
		IndirectPercentage: math.Round(indirect / total * 100),
		Characteristics:    characteristics(answers),
		Interpretation:     Interpretation(direct, indirect),
		Recommendations:    Recommendations(direct, indirect),
	}

	directPercent := direct / e.directMax * 100
	indirectPercent := indirect / e.indirectMax * 100
	res.Style = styleSummary(directPercent, indirectPercent)
	res.TopGroups = e.rankGroups(directPercent, indirectPercent)

	return res, nil
}

// Validate checks the vector length and that every slot holds a Likert value.
func Validate(answers domain.Answers) error {
	if len(answers) != domain.QuestionCount {
		return &InputError{
			Position: -1,
			Reason:   fmt.Sprintf("expected %d answers, got %d", domain.QuestionCount, len(answers)),
		}
	}
	for i, v := range answers {
		if v == 0 {
			return &InputError{Position: i, Value: v, Reason: "not answered"}
		}
		if v < domain.MinAnswer || v > domain.MaxAnswer {
			return &InputError{
				Position: i,
				Value:    v,
				Reason:   fmt.Sprintf("must be between %d and %d", domain.MinAnswer, domain.MaxAnswer),
			}
		}
	}
	return nil
}

func sumAt(answers domain.Answers, positions []int) float64 {
	var s int
	for _, p := range positions {
		s += answers[p]
	}
	return float64(s)
}

// characteristics pairs each trait with its opposing statement and normalizes
// the four raw ratios so they share 100%.
func characteristics(a domain.Answers) domain.Characteristics {
	pair := func(agree, oppose int) float64 {
		return float64(a[agree]+(domain.MaxAnswer-a[oppose])) / 10
	}
	comm := pair(0, 1)
	rel := pair(9, 8)
	conf := pair(4, 5)
	ctx := pair(2, 3)

	total := comm + rel + conf + ctx
	return domain.Characteristics{
		CommApproach:       comm / total * 100,
		RelationshipFocus:  rel / total * 100,
		ConflictResolution: conf / total * 100,
		ContextSensitivity: ctx / total * 100,
	}
}

func (e *Engine) rankGroups(directPercent, indirectPercent float64) []domain.GroupMatch {
	ranked := make([]domain.GroupMatch, 0, len(e.groups))
	for _, g := range e.groups {
		ranked = append(ranked, domain.GroupMatch{
			Group:     g,
			BaseScore: g.BaseScore(directPercent, indirectPercent),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].BaseScore > ranked[j].BaseScore })
	if len(ranked) > e.limit {
		ranked = ranked[:e.limit]
	}

	var total float64
	for _, m := range ranked {
		total += m.BaseScore
	}
	for i := range ranked {
		if total > 0 {
			ranked[i].MatchPercentage = ranked[i].BaseScore / total * 100
		}
		ranked[i].Level = matchLevel(ranked[i].MatchPercentage)
		ranked[i].TopMatch = i < topMatchCount
	}
	return ranked
}

func matchLevel(pct float64) domain.MatchLevel {
	switch {
	case pct >= 15:
		return domain.MatchExcellent
	case pct >= 12:
		return domain.MatchGood
	case pct >= 10:
		return domain.MatchModerate
	default:
		return domain.MatchLower
	}
}

func styleSummary(directPercent, indirectPercent float64) domain.StyleSummary {
	s := domain.StyleSummary{
		DirectPercent:   directPercent,
		IndirectPercent: indirectPercent,
		Difference:      math.Abs(directPercent - indirectPercent),
	}
	switch {
	case s.Difference < balancedStyleGap:
		s.Leaning = domain.LeaningBalanced
	case directPercent > indirectPercent:
		s.Leaning = domain.LeaningDirect
	default:
		s.Leaning = domain.LeaningIndirect
	}
	s.Description = styleDescriptions[s.Leaning]
	return s
}

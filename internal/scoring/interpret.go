package scoring

import (
	"math"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/domain"
)

const (
	strongDirectText     = "You strongly prefer direct, task-oriented communication typical in Anglo-American and Germanic cultures. You value clarity, explicit messages, and addressing issues head-on. This communication style is effective in low-context environments where information is conveyed primarily through words rather than context."
	moderateDirectText   = "You have a moderate preference for direct, task-oriented communication. While you appreciate clarity and explicit communication, you also show some flexibility in adapting to different communication contexts. This balanced approach can be beneficial in diverse cultural settings."
	strongIndirectText   = "You strongly prefer indirect, relationship-oriented communication typical in Japanese, Arab, and Kazakh cultures. You value context, non-verbal cues, and maintaining harmony in relationships. This communication style is effective in high-context environments where much of the communication happens implicitly."
	moderateIndirectText = "You have a moderate preference for indirect, relationship-oriented communication. While you value context and relationships, you also show some comfort with direct communication when needed. This adaptable approach can be beneficial in diverse cultural settings."
	balancedText         = "You have a mixed communication style with nearly equal preferences for both direct and indirect communication. This balanced approach indicates strong adaptability to different cultural contexts. You can effectively navigate both low-context and high-context communication environments, making you well-suited for cross-cultural interactions."
)

var styleDescriptions = map[domain.Leaning]string{
	domain.LeaningBalanced: "You have a balanced communication style that adapts well to both direct and indirect cultures. This versatility makes you effective in diverse cultural settings.",
	domain.LeaningDirect:   "You prefer a direct, low-context communication style, most common in Germanic and Scandinavian language groups. You value clarity, explicit messages, and task-oriented interactions.",
	domain.LeaningIndirect: "You prefer an indirect, high-context communication style, most common in Asian, Middle Eastern, and many other language groups. You value context, harmony, and relationship-building.",
}

var (
	directRecommendations = []domain.Recommendation{
		{Title: "Develop Context Awareness", Text: "Practice paying attention to non-verbal cues, body language, and what's left unsaid in conversations."},
		{Title: "Build Relationships First", Text: "When working with high-context cultures, invest time in building personal relationships before jumping into business matters."},
		{Title: "Practice Indirect Communication", Text: "Learn to read between the lines and use more subtle ways of expressing disagreement or concerns."},
		{Title: "Be Patient with Ambiguity", Text: "Not all cultures value explicit clarity. Practice being comfortable with indirect responses and implied meanings."},
	}
	indirectRecommendations = []domain.Recommendation{
		{Title: "Be More Explicit", Text: "When working with low-context cultures, state your thoughts and needs more directly and clearly."},
		{Title: "Address Conflicts Directly", Text: "Practice confronting issues head-on rather than avoiding them. Direct cultures appreciate honest dialogue."},
		{Title: "Focus on Tasks", Text: "In professional settings with direct communicators, balance relationship-building with task completion."},
		{Title: "Value Punctuality", Text: "Low-context cultures typically have strict time expectations. Strive to be on time for meetings and deadlines."},
	}
)

// Interpretation picks the narrative for a pair of raw scores. Equal scores
// get their own text rather than either "moderate" one.
func Interpretation(direct, indirect float64) string {
	strong := math.Abs(direct-indirect) > strongPreferenceGap
	switch {
	case direct > indirect && strong:
		return strongDirectText
	case direct > indirect:
		return moderateDirectText
	case indirect > direct && strong:
		return strongIndirectText
	case indirect > direct:
		return moderateIndirectText
	default:
		return balancedText
	}
}

// Recommendations returns development tips aimed at the weaker side.
// Ties get the tips for indirect communicators.
func Recommendations(direct, indirect float64) []domain.Recommendation {
	src := indirectRecommendations
	if direct > indirect {
		src = directRecommendations
	}
	return append([]domain.Recommendation(nil), src...)
}

package domain

var questions = [QuestionCount]Question{
	{1, "I prefer to communicate in a straightforward and direct manner.", QuestionDirect},
	{2, "I tend to use indirect communication and hints rather than explicit statements.", QuestionIndirect},
	{3, "I pay close attention to context and non-verbal cues when communicating.", QuestionIndirect},
	{4, "I believe in being explicit and clear in my communication, leaving little room for interpretation.", QuestionDirect},
	{5, "When facing conflict, I address it directly and openly.", QuestionDirect},
	{6, "I prefer to avoid direct confrontation and find indirect ways to resolve conflicts.", QuestionIndirect},
	{7, "I am comfortable with periods of silence in conversation.", QuestionIndirect},
	{8, "I believe silence can be meaningful and communicative.", QuestionIndirect},
	{9, "I focus primarily on tasks and goals rather than building relationships in professional settings.", QuestionDirect},
	{10, "Building relationships is as important as completing tasks in my work.", QuestionIndirect},
	{11, "I feel comfortable standing close to others during conversations.", QuestionDirect},
	{12, "I prefer maintaining a respectful distance and personal space during interactions.", QuestionIndirect},
	{13, "I am comfortable with casual physical touch like handshakes, pats on the back, etc.", QuestionDirect},
	{14, "I prefer minimal physical contact in professional and social interactions.", QuestionIndirect},
	{15, "I value punctuality and expect meetings to start and end on time.", QuestionDirect},
	{16, "I have a flexible approach to time and deadlines.", QuestionIndirect},
}

// Order matters: ranking ties keep this order.
var languageGroups = [...]LanguageGroup{
	{Name: "Indo-European (Germanic)", Languages: "English, German, Dutch", Countries: []string{"🇺🇸", "🇬🇧", "🇩🇪", "🇳🇱"}, Style: GroupDirect, DirectWeight: 0.95},
	{Name: "Indo-European (Romance)", Languages: "Spanish, French, Italian, Portuguese", Countries: []string{"🇪🇸", "🇫🇷", "🇮🇹", "🇵🇹"}, Style: GroupMixed, DirectWeight: 0.6, IndirectWeight: 0.4},
	{Name: "Indo-European (Slavic)", Languages: "Russian, Polish, Czech, Serbian", Countries: []string{"🇷🇺", "🇵🇱", "🇨🇿", "🇷🇸"}, Style: GroupMixed, DirectWeight: 0.5, IndirectWeight: 0.5},
	{Name: "Sino-Tibetan", Languages: "Mandarin, Cantonese, Tibetan", Countries: []string{"🇨🇳", "🇭🇰", "🇹🇼"}, Style: GroupIndirect, IndirectWeight: 0.98},
	{Name: "Japanese", Languages: "Japanese", Countries: []string{"🇯🇵"}, Style: GroupIndirect, IndirectWeight: 1.0},
	{Name: "Korean", Languages: "Korean", Countries: []string{"🇰🇷"}, Style: GroupIndirect, IndirectWeight: 0.96},
	{Name: "Afro-Asiatic (Semitic)", Languages: "Arabic, Hebrew", Countries: []string{"🇸🇦", "🇦🇪", "🇪🇬", "🇮🇱"}, Style: GroupIndirect, IndirectWeight: 0.92},
	{Name: "Turkic", Languages: "Turkish, Kazakh, Uzbek, Azerbaijani", Countries: []string{"🇹🇷", "🇰🇿", "🇺🇿", "🇦🇿"}, Style: GroupIndirect, IndirectWeight: 0.9},
	{Name: "Dravidian", Languages: "Tamil, Telugu, Kannada, Malayalam", Countries: []string{"🇮🇳"}, Style: GroupIndirect, IndirectWeight: 0.88},
	{Name: "Austronesian", Languages: "Indonesian, Malay, Tagalog, Malagasy", Countries: []string{"🇮🇩", "🇲🇾", "🇵🇭", "🇲🇬"}, Style: GroupIndirect, IndirectWeight: 0.85},
	{Name: "Finno-Ugric", Languages: "Finnish, Hungarian, Estonian", Countries: []string{"🇫🇮", "🇭🇺", "🇪🇪"}, Style: GroupMixed, DirectWeight: 0.65, IndirectWeight: 0.35},
	{Name: "Indo-Iranian (Persian)", Languages: "Persian (Farsi), Kurdish, Pashto", Countries: []string{"🇮🇷", "🇦🇫"}, Style: GroupIndirect, IndirectWeight: 0.87},
	{Name: "Indo-European (Indic)", Languages: "Hindi, Bengali, Punjabi, Urdu", Countries: []string{"🇮🇳", "🇵🇰", "🇧🇩"}, Style: GroupMixed, DirectWeight: 0.4, IndirectWeight: 0.6},
	{Name: "Austroasiatic", Languages: "Vietnamese, Khmer", Countries: []string{"🇻🇳", "🇰🇭"}, Style: GroupIndirect, IndirectWeight: 0.89},
	{Name: "Niger-Congo", Languages: "Swahili, Yoruba, Zulu", Countries: []string{"🇰🇪", "🇹🇿", "🇳🇬", "🇿🇦"}, Style: GroupMixed, DirectWeight: 0.45, IndirectWeight: 0.55},
}

// Questions returns a copy of the question table.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions[:])
	return out
}

// QuestionAt returns the question at a zero-based position.
func QuestionAt(i int) (Question, bool) {
	if i < 0 || i >= len(questions) {
		return Question{}, false
	}
	return questions[i], true
}

// PositionsOf lists zero-based positions of questions with the given type, in table order.
func PositionsOf(t QuestionType) []int {
	var out []int
	for i, q := range questions {
		if q.Type == t {
			out = append(out, i)
		}
	}
	return out
}

// LanguageGroups returns a copy of the language group table in its fixed order.
func LanguageGroups() []LanguageGroup {
	out := make([]LanguageGroup, len(languageGroups))
	for i, g := range languageGroups {
		g.Countries = append([]string(nil), g.Countries...)
		out[i] = g
	}
	return out
}

// MaxScore is the highest raw sum reachable by questions of type t.
func MaxScore(t QuestionType) int {
	return len(PositionsOf(t)) * MaxAnswer
}

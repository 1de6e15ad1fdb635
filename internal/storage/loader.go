package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/domain"
)

// AnswerSheet is a completed questionnaire stored outside the program.
type AnswerSheet struct {
	Name    string         `json:"name" yaml:"name"`
	Answers domain.Answers `json:"answers" yaml:"answers"`
}

// LoadAnswersFromFile reads an answer sheet from a .json, .yaml or .yml file.
// Values are not range-checked here; the scoring engine does that.
func LoadAnswersFromFile(path string) (AnswerSheet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return AnswerSheet{}, fmt.Errorf("read answers file: %w", err)
	}

	var sheet AnswerSheet
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, &sheet)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &sheet)
	default:
		return AnswerSheet{}, fmt.Errorf("unsupported answers file type %q", filepath.Ext(path))
	}
	if err != nil {
		return AnswerSheet{}, fmt.Errorf("unmarshal answers: %w", err)
	}
	return sheet, nil
}

// ParseAnswers accepts "5,4,3,..." (commas or spaces) or a run of 16 digits
// such as "5433215544332211".
func ParseAnswers(s string) (domain.Answers, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("no answers given")
	}

	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) == 1 && len(fields[0]) == domain.QuestionCount {
		fields = strings.Split(fields[0], "")
	}

	out := make(domain.Answers, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

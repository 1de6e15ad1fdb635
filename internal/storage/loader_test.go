package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/domain"
)

func writeSheet(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

var want = domain.Answers{5, 1, 2, 4, 5, 1, 2, 2, 4, 1, 5, 2, 4, 1, 5, 2}

func TestLoadAnswersFromFile_YAML(t *testing.T) {
	p := writeSheet(t, "sheet.yaml", `
name: Ada
answers: [5, 1, 2, 4, 5, 1, 2, 2, 4, 1, 5, 2, 4, 1, 5, 2]
`)
	sheet, err := LoadAnswersFromFile(p)
	require.NoError(t, err)
	assert.Equal(t, "Ada", sheet.Name)
	assert.Equal(t, want, sheet.Answers)
}

func TestLoadAnswersFromFile_JSON(t *testing.T) {
	p := writeSheet(t, "sheet.json", `{"name":"Ada","answers":[5,1,2,4,5,1,2,2,4,1,5,2,4,1,5,2]}`)
	sheet, err := LoadAnswersFromFile(p)
	require.NoError(t, err)
	assert.Equal(t, want, sheet.Answers)
}

func TestLoadAnswersFromFile_Errors(t *testing.T) {
	_, err := LoadAnswersFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "read answers file")

	_, err = LoadAnswersFromFile(writeSheet(t, "sheet.txt", "5"))
	assert.ErrorContains(t, err, "unsupported")

	_, err = LoadAnswersFromFile(writeSheet(t, "bad.json", "{"))
	assert.ErrorContains(t, err, "unmarshal answers")
}

func TestParseAnswers(t *testing.T) {
	got, err := ParseAnswers("5,1,2,4,5,1,2,2,4,1,5,2,4,1,5,2")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = ParseAnswers("5 1 2 4 5 1 2 2 4 1 5 2 4 1 5 2")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = ParseAnswers("5124512241524152")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// length is left to the engine
	got, err = ParseAnswers("3,3")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = ParseAnswers("")
	assert.Error(t, err)
	_, err = ParseAnswers("5,x,3")
	assert.ErrorContains(t, err, "answer 2")
}

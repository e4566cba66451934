package quizgen

import (
	"testing"

	"quizcraft/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuestionJSON = `{
	"question": "2+2?",
	"options": ["3", "4", "5", "6"],
	"correctAnswer": 1,
	"explanation": "Basic arithmetic"
}`

func TestNormalizeQuestions_WrappedObject(t *testing.T) {
	questions, err := normalizeQuestions(`{"questions": [` + validQuestionJSON + `]}`)
	require.NoError(t, err)

	require.Len(t, questions, 1)
	assert.Equal(t, "2+2?", questions[0].Text)
	assert.Equal(t, []string{"3", "4", "5", "6"}, questions[0].Options)
	assert.Equal(t, 1, questions[0].CorrectIndex)
	assert.Equal(t, "Basic arithmetic", questions[0].Explanation)
}

func TestNormalizeQuestions_BareArray(t *testing.T) {
	questions, err := normalizeQuestions(`[` + validQuestionJSON + `]`)
	require.NoError(t, err)
	require.Len(t, questions, 1)
}

func TestNormalizeQuestions_MarkdownFences(t *testing.T) {
	raw := "```json\n{\"questions\": [" + validQuestionJSON + "]}\n```"
	questions, err := normalizeQuestions(raw)
	require.NoError(t, err)
	require.Len(t, questions, 1)
}

func TestNormalizeQuestions_SurroundingProse(t *testing.T) {
	raw := "Here is your quiz:\n[" + validQuestionJSON + "]\nEnjoy!"
	questions, err := normalizeQuestions(raw)
	require.NoError(t, err)
	require.Len(t, questions, 1)
}

func TestNormalizeQuestions_MissingExplanationDefaultsEmpty(t *testing.T) {
	questions, err := normalizeQuestions(`[{
		"question": "q", "options": ["a", "b", "c", "d"], "correctAnswer": 2
	}]`)
	require.NoError(t, err)
	assert.Equal(t, "", questions[0].Explanation)
	assert.Equal(t, 2, questions[0].CorrectIndex)
}

func TestNormalizeQuestions_MissingCorrectAnswerDefaultsZero(t *testing.T) {
	questions, err := normalizeQuestions(`[{
		"question": "q", "options": ["a", "b", "c", "d"]
	}]`)
	require.NoError(t, err)
	assert.Equal(t, 0, questions[0].CorrectIndex)
}

func TestNormalizeQuestions_OutOfRangeCorrectAnswerDefaultsZero(t *testing.T) {
	questions, err := normalizeQuestions(`[{
		"question": "q", "options": ["a", "b", "c", "d"], "correctAnswer": 7
	}]`)
	require.NoError(t, err)
	assert.Equal(t, 0, questions[0].CorrectIndex)
}

func TestNormalizeQuestions_DropsUnusableEntries(t *testing.T) {
	questions, err := normalizeQuestions(`[
		` + validQuestionJSON + `,
		{"question": "", "options": ["a", "b", "c", "d"]},
		{"question": "too few options", "options": ["a", "b"]},
		{"question": "bad types", "options": "not an array"}
	]`)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "2+2?", questions[0].Text)
}

func TestNormalizeQuestions_NonCanonicalCountAccepted(t *testing.T) {
	raw := `[` + validQuestionJSON + `,` + validQuestionJSON + `,` + validQuestionJSON + `]`
	questions, err := normalizeQuestions(raw)
	require.NoError(t, err)
	assert.Len(t, questions, 3) // not 10, still accepted
}

func TestNormalizeQuestions_MalformedPayloads(t *testing.T) {
	cases := map[string]string{
		"not json":                  "the model had a bad day",
		"truncated json":            `{"questions": [`,
		"wrapper without questions": `{"items": []}`,
		"scalar questions field":    `{"questions": 42}`,
		"array of scalars":          `[1, 2, 3]`,
		"empty array":               `[]`,
		"all entries dropped":       `[{"question": "", "options": []}]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := normalizeQuestions(raw)
			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domain.CodeMalformedResponse, domainErr.Code)
		})
	}
}

package quizgen

import (
	"encoding/json"
	"strings"
	"sync"

	"quizcraft/internal/domain"
	"quizcraft/internal/logger"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
)

// structuralSchemaJSON is the hard-fail tier: after unwrapping, the payload
// must be a non-empty array of objects. Anything field-level is handled by
// the soft tier below.
const structuralSchemaJSON = `{
	"type": "array",
	"items": {"type": "object"},
	"minItems": 1
}`

var (
	structuralOnce   sync.Once
	structuralSchema *jsonschema.Schema
)

func compiledStructuralSchema() *jsonschema.Schema {
	structuralOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(structuralSchemaJSON))
		if err != nil {
			panic("quizgen: invalid structural schema: " + err.Error())
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://quiz-questions.json", doc); err != nil {
			panic("quizgen: add structural schema resource: " + err.Error())
		}
		structuralSchema, err = c.Compile("schema://quiz-questions.json")
		if err != nil {
			panic("quizgen: compile structural schema: " + err.Error())
		}
	})
	return structuralSchema
}

// rawQuestion is the tolerant wire shape of one question entry. Pointer on
// the correct index distinguishes an absent field from a genuine zero,
// although both ultimately resolve to index 0.
type rawQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// normalizeQuestions turns the model's untrusted reply into canonical
// questions. Structural anomalies fail with a malformed-response error;
// field-level anomalies are defaulted or dropped per entry:
//
//	wrapped {"questions": [...]}       -> unwrapped
//	markdown fences / surrounding text -> outermost JSON document extracted
//	entry undecodable or not an object -> entry dropped
//	missing or blank question text     -> entry dropped
//	options count != 4                 -> entry dropped
//	missing explanation                -> ""
//	missing correctAnswer              -> 0
//	correctAnswer outside [0,3]        -> 0
//
// A reply whose entries are all dropped is treated as malformed: an empty
// quiz is useless to every downstream consumer.
func normalizeQuestions(raw string) ([]domain.Question, error) {
	l := logger.Get()

	doc, err := extractJSONDocument(raw)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		return nil, domain.NewMalformedResponseError("model response is not valid JSON", err)
	}

	// Dual-shape tolerance: a bare array or an object wrapping the array
	// under "questions".
	if wrapper, ok := parsed.(map[string]any); ok {
		inner, ok := wrapper["questions"]
		if !ok {
			return nil, domain.NewMalformedResponseError(
				"model response object has no questions field", nil)
		}
		parsed = inner
	}

	if err := compiledStructuralSchema().Validate(parsed); err != nil {
		return nil, domain.NewMalformedResponseError(
			"model response is not an array of question objects", err)
	}

	entries := parsed.([]any)
	questions := make([]domain.Question, 0, len(entries))
	for i, entry := range entries {
		entryBytes, err := json.Marshal(entry)
		if err != nil {
			l.Warn("Dropping unserializable question entry", zap.Int("index", i))
			continue
		}
		var rq rawQuestion
		if err := json.Unmarshal(entryBytes, &rq); err != nil {
			l.Warn("Dropping question entry with unusable field types",
				zap.Int("index", i), zap.Error(err))
			continue
		}
		if strings.TrimSpace(rq.Question) == "" {
			l.Warn("Dropping question entry without text", zap.Int("index", i))
			continue
		}
		if len(rq.Options) != domain.OptionCount {
			l.Warn("Dropping question entry without exactly 4 options",
				zap.Int("index", i), zap.Int("options", len(rq.Options)))
			continue
		}

		correct := 0
		if rq.CorrectAnswer != nil {
			correct = *rq.CorrectAnswer
			if correct < 0 || correct >= domain.OptionCount {
				l.Warn("Defaulting out-of-range correct index",
					zap.Int("index", i), zap.Int("correct_answer", correct))
				correct = 0
			}
		}

		questions = append(questions, domain.Question{
			Text:         rq.Question,
			Options:      rq.Options,
			CorrectIndex: correct,
			Explanation:  rq.Explanation,
		})
	}

	if len(questions) == 0 {
		return nil, domain.NewMalformedResponseError(
			"model response contained no usable questions", nil)
	}
	return questions, nil
}

// extractJSONDocument locates the outermost JSON document in the model's
// reply, tolerating markdown fences and stray prose around it.
func extractJSONDocument(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	start := strings.IndexAny(s, "[{")
	if start == -1 {
		return "", domain.NewMalformedResponseError("model response contains no JSON document", nil)
	}

	var end int
	if s[start] == '[' {
		end = strings.LastIndex(s, "]")
	} else {
		end = strings.LastIndex(s, "}")
	}
	if end <= start {
		return "", domain.NewMalformedResponseError("model response contains an unterminated JSON document", nil)
	}

	return s[start : end+1], nil
}

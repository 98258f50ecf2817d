package aiquiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pomoduo/quiz-backend/internal/quiz"
)

const itemSchema = `{
	"type": "object",
	"properties": {
		"question": {"type": "string", "minLength": 1},
		"options": {"type": "array", "items": {"type": "string"}, "minItems": 4, "maxItems": 4},
		"answer": {"type": ["string", "integer"]}
	},
	"required": ["question", "options", "answer"]
}`

var compiledItemSchema = jsonschema.MustCompileString("inmemory://aiquiz/item.json", itemSchema)

// jsonQuestion is one item of a JSON formatted model reply. Answer is either
// the option value, its letter, or its zero-based index.
type jsonQuestion struct {
	Question string          `json:"question"`
	Options  []string        `json:"options"`
	Answer   json.RawMessage `json:"answer"`
}

// parseJSON maps a JSON array reply. Items that fail the item schema or whose
// answer does not resolve are skipped; only a body that is not an array is
// an error.
func parseJSON(body string) (quiz.Quiz, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}

	out := make(quiz.Quiz, 0, len(items))
	for _, raw := range items {
		item, err := decodeItem(raw)
		if err != nil {
			continue
		}
		options := stripOptionLetters(item.Options)
		idx := answerIndex(item.Answer, options)
		if idx < 0 {
			continue
		}
		out = append(out, quiz.NewQuestion(strings.TrimSpace(item.Question), options, idx))
	}
	return out, nil
}

func decodeItem(raw json.RawMessage) (jsonQuestion, error) {
	var payload interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return jsonQuestion{}, err
	}
	if err := compiledItemSchema.Validate(payload); err != nil {
		return jsonQuestion{}, fmt.Errorf("reply item schema: %w", err)
	}
	var item jsonQuestion
	if err := json.Unmarshal(raw, &item); err != nil {
		return jsonQuestion{}, err
	}
	return item, nil
}

func answerIndex(raw json.RawMessage, options []string) int {
	var idx int
	if err := json.Unmarshal(raw, &idx); err == nil {
		if idx >= 0 && idx < len(options) {
			return idx
		}
		return -1
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return -1
	}
	return resolveAnswer(s, options)
}

// stripOptionLetters removes "A) " style prefixes when every option carries one.
func stripOptionLetters(options []string) []string {
	out := make([]string, len(options))
	for i, opt := range options {
		m := optionLine.FindStringSubmatch(strings.TrimSpace(opt))
		if m == nil {
			copy(out, options)
			for j := range out {
				out[j] = strings.TrimSpace(out[j])
			}
			return out
		}
		out[i] = strings.TrimSpace(m[3])
	}
	return out
}

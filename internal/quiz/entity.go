package quiz

// MaxQuestions caps the number of questions in one quiz.
const MaxQuestions = 5

// OptionsPerQuestion is the option count of a well-formed question.
const OptionsPerQuestion = 4

type Question struct {
	Text    string
	Options []string
	// Answer is the correct option value. Empty for sentinel questions.
	Answer string
	// CorrectIndex points into Options, or -1 when there is no correct option.
	CorrectIndex int
}

type Quiz []Question

// NewQuestion builds a question whose answer is options[correct].
func NewQuestion(text string, options []string, correct int) Question {
	q := Question{Text: text, Options: options, CorrectIndex: -1}
	if correct >= 0 && correct < len(options) {
		q.Answer = options[correct]
		q.CorrectIndex = correct
	}
	return q
}

// Valid reports whether the answer references one of the options.
// Questions without options are always valid.
func (q Question) Valid() bool {
	if len(q.Options) == 0 {
		return true
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return false
	}
	return q.Options[q.CorrectIndex] == q.Answer
}

type GenerateRequest struct {
	Topic string `json:"topic"`
}

type AnswerQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

type AnswerResponse struct {
	Quiz  []AnswerQuestion `json:"quiz"`
	Error string           `json:"error,omitempty"`
}

type IndexedQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toAnswerQuestions(qz Quiz) []AnswerQuestion {
	out := make([]AnswerQuestion, 0, len(qz))
	for _, q := range qz {
		out = append(out, AnswerQuestion{Question: q.Text, Options: nonNil(q.Options), Answer: q.Answer})
	}
	return out
}

func toIndexedQuestions(qz Quiz) []IndexedQuestion {
	out := make([]IndexedQuestion, 0, len(qz))
	for _, q := range qz {
		out = append(out, IndexedQuestion{Question: q.Text, Options: nonNil(q.Options), CorrectIndex: q.CorrectIndex})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

package aiquiz

import (
	"regexp"
	"strings"

	"github.com/pomoduo/quiz-backend/internal/quiz"
)

var (
	// "1. text", "2) text", "Q3: text", "Question 4 - text", "Question 5"
	questionLine = regexp.MustCompile(`(?i)^(?:(?:question|q)\s*(\d{1,2})\s*[.):\-]?|(\d{1,2})[.):])\s*(.*)$`)
	// "A) text", "b. text", "(C) text", "D: text", "A - text"
	optionLine = regexp.MustCompile(`^(?:\(([A-Da-d])\)|([A-Da-d])\s*[).:\-])\s*(.+)$`)
	// "Answer: B", "Correct answer: B) text", "The correct answer is text"
	answerLine = regexp.MustCompile(`(?i)^(?:the\s+)?(?:correct\s+(?:answer|option)|answer)(?:\s+is\s*[:\-]?|\s*[:\-])\s*(.+)$`)
	// "B", "(B)", "B) text", "b. text"
	answerLetter = regexp.MustCompile(`^\(?([A-Da-d])\)?(?:[).:\s]|$)`)
	bulletPrefix = regexp.MustCompile(`^[-*•]\s+`)
	headingMark  = regexp.MustCompile(`^#+\s*`)
	// "**Answer:** B", "__Q2.__ text"
	emphasisLabel = regexp.MustCompile(`^(?:\*\*|__)([^*_]*[:.)])(?:\*\*|__)\s*`)
	// "**Paris**", "**What is RAM?**"
	starWrap = regexp.MustCompile(`^\*\*(\S(?:.*\S)?)\*\*$`)
	// "__bold phrase__". Single tokens such as __init__ are left alone.
	underscoreWrap = regexp.MustCompile(`^__(\S.*\s.*\S)__$`)
	inlineCode     = regexp.MustCompile("`([^`]+)`")
)

type draft struct {
	text    []string
	options [quiz.OptionsPerQuestion]string
	filled  int
	answer  string
}

func (d *draft) hasOptions() bool {
	return d.filled > 0
}

func (d *draft) setOption(letter byte, text string) {
	idx := int(letter - 'A')
	if d.options[idx] == "" {
		d.filled++
	}
	d.options[idx] = text
}

// build returns the question and whether it is complete: text, four options
// and an answer that resolves to one of them.
func (d *draft) build() (quiz.Question, bool) {
	text := strings.TrimSpace(strings.Join(d.text, " "))
	if text == "" || d.filled != quiz.OptionsPerQuestion || d.answer == "" {
		return quiz.Question{}, false
	}
	options := d.options[:]
	idx := resolveAnswer(d.answer, options)
	if idx < 0 {
		return quiz.Question{}, false
	}
	return quiz.NewQuestion(text, append([]string(nil), options...), idx), true
}

// ParseQuestions turns a chat model reply into at most quiz.MaxQuestions
// structured questions. JSON array replies are validated and mapped directly;
// anything else is read line by line. Incomplete questions are dropped.
func ParseQuestions(content string) quiz.Quiz {
	body := stripFences(content)
	if strings.HasPrefix(body, "[") {
		if qz, err := parseJSON(body); err == nil {
			return capQuiz(qz)
		}
	}
	return capQuiz(parseText(body))
}

func parseText(content string) quiz.Quiz {
	var (
		out     quiz.Quiz
		current *draft
	)
	flush := func() {
		if current == nil {
			return
		}
		if q, ok := current.build(); ok {
			out = append(out, q)
		}
		current = nil
	}

	for _, raw := range strings.Split(content, "\n") {
		line := cleanLine(raw)
		if line == "" {
			continue
		}

		if m := answerLine.FindStringSubmatch(line); m != nil && current != nil {
			current.answer = unwrapEmphasis(m[1])
			continue
		}

		if m := optionLine.FindStringSubmatch(line); m != nil && current != nil && len(current.text) > 0 {
			letter := m[1]
			if letter == "" {
				letter = m[2]
			}
			current.setOption(strings.ToUpper(letter)[0], unwrapEmphasis(m[3]))
			continue
		}

		if m := questionLine.FindStringSubmatch(line); m != nil {
			flush()
			current = &draft{}
			if text := unwrapEmphasis(m[3]); text != "" {
				current.text = append(current.text, text)
			}
			continue
		}

		// Continuation of a question stem that wrapped onto several lines.
		if current != nil && !current.hasOptions() && current.answer == "" {
			current.text = append(current.text, line)
		}
	}
	flush()
	return out
}

// resolveAnswer maps a raw answer to an option index, or -1. Exact option
// text wins over a letter so that options such as "A car" stay unambiguous.
func resolveAnswer(raw string, options []string) int {
	answer := normalizeAnswer(raw)
	for i, opt := range options {
		if strings.EqualFold(normalizeAnswer(opt), answer) {
			return i
		}
	}
	if m := answerLetter.FindStringSubmatch(answer); m != nil {
		return int(strings.ToUpper(m[1])[0] - 'A')
	}
	match := -1
	for i, opt := range options {
		o := strings.ToLower(normalizeAnswer(opt))
		if o == "" || !strings.Contains(strings.ToLower(answer), o) {
			continue
		}
		if match >= 0 {
			return -1
		}
		match = i
	}
	return match
}

func normalizeAnswer(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ".")
	return strings.TrimSpace(s)
}

// cleanLine strips markdown that wraps a line or its leading label. Markers
// inside the text, as in "int **p" or "__init__", are kept.
func cleanLine(raw string) string {
	line := strings.TrimSpace(raw)
	line = headingMark.ReplaceAllString(line, "")
	line = bulletPrefix.ReplaceAllString(line, "")
	line = inlineCode.ReplaceAllString(line, "$1")
	line = emphasisLabel.ReplaceAllString(line, "$1 ")
	return unwrapEmphasis(line)
}

func unwrapEmphasis(s string) string {
	s = strings.TrimSpace(s)
	for {
		if m := starWrap.FindStringSubmatch(s); m != nil && !strings.Contains(m[1], "**") {
			s = strings.TrimSpace(m[1])
			continue
		}
		if m := underscoreWrap.FindStringSubmatch(s); m != nil && !strings.Contains(m[1], "__") {
			s = strings.TrimSpace(m[1])
			continue
		}
		return s
	}
}

func stripFences(content string) string {
	clean := strings.TrimSpace(content)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

func capQuiz(qz quiz.Quiz) quiz.Quiz {
	if len(qz) > quiz.MaxQuestions {
		return qz[:quiz.MaxQuestions]
	}
	return qz
}

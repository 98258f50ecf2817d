package aiquiz

import (
	"fmt"

	"github.com/pomoduo/quiz-backend/internal/quiz"
)

func BuildPrompt(topic string) string {
	return fmt.Sprintf(
		"Generate %d multiple-choice questions about %s, each with %d options and the correct answer.",
		quiz.MaxQuestions, topic, quiz.OptionsPerQuestion,
	)
}

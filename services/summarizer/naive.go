// Package aisvc provides note.Summarizer implementations. The naive service
// keeps summaries, flashcards and quizzes usable without any external call;
// a hosted-model client can be swapped in behind the same interface.
package aisvc

import (
	"fmt"
	"strings"

	"github.com/aliHasanov22/holb-st-m/core/note"
)

const maxSummarySentences = 2

type naiveService struct{}

var _ note.Summarizer = (*naiveService)(nil)

// NewNaiveService returns a Summarizer built on simple text heuristics:
// leading sentences for summaries, "term: definition" lines for flashcards
// and quiz questions.
func NewNaiveService() note.Summarizer {
	return &naiveService{}
}

func (svc naiveService) Summarize(n note.Note) (string, error) {
	sentences := splitSentences(n.Body)
	if len(sentences) > maxSummarySentences {
		sentences = sentences[:maxSummarySentences]
	}
	return strings.Join(sentences, " "), nil
}

func (svc naiveService) Flashcards(n note.Note) ([]note.Flashcard, error) {
	terms, defs := definitions(n.Body)
	cards := make([]note.Flashcard, 0, len(terms))
	for i, term := range terms {
		cards = append(cards, note.Flashcard{Front: term, Back: defs[i]})
	}
	return cards, nil
}

func (svc naiveService) Quiz(n note.Note) ([]note.QuizQuestion, error) {
	terms, defs := definitions(n.Body)
	questions := make([]note.QuizQuestion, 0, len(terms))
	for i, term := range terms {
		choices := make([]string, len(defs))
		copy(choices, defs)
		questions = append(questions, note.QuizQuestion{
			Question: fmt.Sprintf("Which of these describes %q?", term),
			Choices:  choices,
			Answer:   i,
		})
	}
	return questions, nil
}

// splitSentences splits on sentence-ending punctuation, keeping it attached.
func splitSentences(body string) []string {
	sentences := make([]string, 0)
	for _, line := range strings.Split(body, "\n") {
		rest := strings.TrimSpace(line)
		for rest != "" {
			idx := strings.IndexAny(rest, ".!?")
			if idx < 0 {
				sentences = append(sentences, rest)
				break
			}
			sentences = append(sentences, strings.TrimSpace(rest[:idx+1]))
			rest = strings.TrimSpace(rest[idx+1:])
		}
	}
	return sentences
}

// definitions extracts "term: definition" lines, in document order.
func definitions(body string) (terms, defs []string) {
	for _, line := range strings.Split(body, "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		term := strings.TrimSpace(parts[0])
		def := strings.TrimSpace(parts[1])
		if term == "" || def == "" {
			continue
		}
		terms = append(terms, term)
		defs = append(defs, def)
	}
	return terms, defs
}

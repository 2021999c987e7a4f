package services

import (
	"context"

	"github.com/andrewpaige1/edusense-api/models"
)

// Generator turns a block of notes into a deck of flashcards.
type Generator interface {
	Generate(ctx context.Context, notes string) ([]models.Flashcard, error)
}

// PlaceholderGenerator returns the same three cards for any input. It stands in
// until a question-answering backend is wired up.
type PlaceholderGenerator struct{}

func (PlaceholderGenerator) Generate(ctx context.Context, notes string) ([]models.Flashcard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []models.Flashcard{
		{Question: "What is Flask?", Answer: "A micro web framework for Python."},
		{Question: "What is EduSense?", Answer: "An AI-powered learning companion."},
		{Question: "What is SDG 4?", Answer: "Quality Education."},
	}, nil
}

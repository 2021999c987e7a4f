package models

// Flashcard represents an individual question/answer pair
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerateRequest is the body accepted by the flashcard endpoint.
// Notes is read but does not influence the generated deck yet.
type GenerateRequest struct {
	Notes string `json:"notes" validate:"required"`
}

type FlashcardsResponse struct {
	Flashcards []Flashcard `json:"flashcards"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

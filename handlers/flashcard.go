package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/andrewpaige1/edusense-api/models"
	"github.com/andrewpaige1/edusense-api/services"
	"github.com/andrewpaige1/edusense-api/utils"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	errNoNotes         = "No notes provided"
	errInvalidBody     = "Invalid request body"
	errBodyTooLarge    = "Request body too large"
	errGenerateFailure = "Failed to generate flashcards"
)

type FlashcardHandler struct {
	Generator services.Generator
	Logger    *zap.Logger

	// MaxBodyBytes caps the request body; zero means no cap.
	MaxBodyBytes int64

	// DecksServed is optional.
	DecksServed prometheus.Counter
}

// GenerateFlashcards answers POST /generate_flashcards
func (h *FlashcardHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	requestID, _ := utils.GetRequestID(r)
	logger := h.Logger.With(zap.String("requestID", requestID))

	if h.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)
	}

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			logger.Info("Rejected oversized body", zap.Int64("limit", maxErr.Limit))
			writeError(w, http.StatusRequestEntityTooLarge, errBodyTooLarge)
			return
		}
		logger.Info("Could not decode request", zap.Error(err))
		writeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		logger.Debug("Validation failed", zap.Error(err))
		writeError(w, http.StatusBadRequest, errNoNotes)
		return
	}

	flashcards, err := h.Generator.Generate(r.Context(), req.Notes)
	if err != nil {
		logger.Error("Flashcard generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, errGenerateFailure)
		return
	}

	if err := writeJSON(w, http.StatusOK, models.FlashcardsResponse{Flashcards: flashcards}); err != nil {
		logger.Warn("Failed to write response", zap.Error(err))
		return
	}
	if h.DecksServed != nil {
		h.DecksServed.Inc()
	}
}

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrewpaige1/edusense-api/models"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetRequestID(req)
	assert.False(t, ok)

	req = req.WithContext(WithRequestID(req.Context(), "abc"))
	id, ok := GetRequestID(req)
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestValidateStruct_Notes(t *testing.T) {
	assert.NoError(t, ValidateStruct(models.GenerateRequest{Notes: "some notes"}))
	assert.NoError(t, ValidateStruct(models.GenerateRequest{Notes: " "}))

	err := ValidateStruct(models.GenerateRequest{})
	assert.EqualError(t, err, "notes is required")
}

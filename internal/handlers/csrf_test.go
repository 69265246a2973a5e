package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestCSRFHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns a token", func(t *testing.T) {
		mockCSRF := NewMockCSRFGenerator(ctrl)
		mockCSRF.EXPECT().Generate(gomock.Any()).Return("minted-token", nil)

		handler := NewCSRFHandler(mockCSRF)

		req := httptest.NewRequest(http.MethodGet, "/api/csrf", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp CSRFResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "minted-token", resp.CSRFToken)
	})

	t.Run("generation failure", func(t *testing.T) {
		mockCSRF := NewMockCSRFGenerator(ctrl)
		mockCSRF.EXPECT().Generate(gomock.Any()).Return("", errors.New("signing error"))

		handler := NewCSRFHandler(mockCSRF)

		req := httptest.NewRequest(http.MethodGet, "/api/csrf", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/api/register", nil)
	rr := httptest.NewRecorder()
	MethodNotAllowed(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Method not supported, try another method", resp.Errors[0].Message)
}

package response

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondAndLogError_DebugDisclosesMessage(t *testing.T) {
	rr := &Responder{DebugMode: true}
	w := httptest.NewRecorder()

	rr.RespondAndLogError(w, context.Background(), errors.New("duplicate key value violates unique constraint"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Duplicate key value violates unique constraint")
}

func TestRespondAndLogError_ProductionHidesMessage(t *testing.T) {
	rr := &Responder{}
	w := httptest.NewRecorder()

	rr.RespondAndLogError(w, context.Background(), errors.New("secret detail"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret detail")
	assert.Contains(t, w.Body.String(), "Error ID: ")
}

func TestReject_AlwaysDisclosesMessage(t *testing.T) {
	rr := &Responder{}
	w := httptest.NewRecorder()

	rr.Reject(w, context.Background(), http.StatusForbidden, "Access denied. Not an admin.")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Access denied. Not an admin."}`, w.Body.String())
}

func TestSendJsonStatus(t *testing.T) {
	rr := &Responder{}
	w := httptest.NewRecorder()

	rr.SendJsonStatus(w, context.Background(), http.StatusCreated, map[string]int{"id": 3})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":3}`, w.Body.String())
}

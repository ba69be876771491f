package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nvelez/clientbridge-backend/internal/apierr"
	"github.com/nvelez/clientbridge-backend/internal/repos"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorEnvelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondServiceError(c, "fallback_code", err)

	var envelope ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return rec, envelope
}

func TestRespondServiceErrorStatusError(t *testing.T) {
	rec, envelope := respond(t, apierr.New(http.StatusConflict, "state_conflict", fmt.Errorf("invoice is already cancelled")))
	if rec.Code != http.StatusConflict {
		t.Fatalf("status: want=%d got=%d", http.StatusConflict, rec.Code)
	}
	if envelope.Error.Code != "state_conflict" {
		t.Fatalf("code: want=%q got=%q", "state_conflict", envelope.Error.Code)
	}
	if envelope.Error.Message != "invoice is already cancelled" {
		t.Fatalf("message: got=%q", envelope.Error.Message)
	}
}

func TestRespondServiceErrorWrappedStatusError(t *testing.T) {
	wrapped := fmt.Errorf("record payment: %w", apierr.New(http.StatusConflict, "state_conflict", fmt.Errorf("no")))
	rec, _ := respond(t, wrapped)
	if rec.Code != http.StatusConflict {
		t.Fatalf("wrapped status: want=%d got=%d", http.StatusConflict, rec.Code)
	}
}

func TestRespondServiceErrorNotFound(t *testing.T) {
	rec, envelope := respond(t, fmt.Errorf("lead: %w", repos.ErrNotFound))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: want=%d got=%d", http.StatusNotFound, rec.Code)
	}
	if envelope.Error.Code != "not_found" {
		t.Fatalf("code: want=%q got=%q", "not_found", envelope.Error.Code)
	}
}

func TestRespondServiceErrorConflict(t *testing.T) {
	rec, _ := respond(t, repos.ErrConflict)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status: want=%d got=%d", http.StatusConflict, rec.Code)
	}
}

func TestRespondServiceErrorDefault(t *testing.T) {
	rec, envelope := respond(t, errors.New("a project name is required"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: want=%d got=%d", http.StatusBadRequest, rec.Code)
	}
	if envelope.Error.Code != "fallback_code" {
		t.Fatalf("code: want=%q got=%q", "fallback_code", envelope.Error.Code)
	}
}

package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestStatusCoversTaxonomy(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"user not found", ErrUserNotFound, http.StatusNotFound},
		{"tournament not found", ErrTournamentNotFound, http.StatusNotFound},
		{"registration not found", ErrRegistrationNotFound, http.StatusNotFound},
		{"match not found", ErrMatchNotFound, http.StatusNotFound},
		{"notification not found", ErrNotificationNotFound, http.StatusNotFound},
		{"registration exists is a soft success", ErrRegistrationExists, http.StatusOK},
		{"match exists", ErrMatchExists, http.StatusConflict},
		{"tournament name taken", ErrTournamentNameTaken, http.StatusConflict},
		{"tournament full", ErrTournamentFull, http.StatusConflict},
		{"registration final", ErrRegistrationFinal, http.StatusConflict},
		{"invalid input", ErrInvalidInput, http.StatusBadRequest},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(tc.err); got != tc.want {
				t.Errorf("Status(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestStatusSeesThroughWrapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"wrapped not found", NotFoundf(ErrUserNotFound, "user with this username doesn't exist"), http.StatusNotFound},
		{"wrapped invalid", Invalid("set scores cannot be negative"), http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(tc.err); got != tc.want {
				t.Errorf("Status(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestRespondSoftDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	Respond(c, ErrRegistrationExists)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "You are already registered for this tournament" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestRespondNotFoundBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	Respond(c, NotFoundf(ErrTournamentNotFound, "tournament with this id doesn't exist"))

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] == "" {
		t.Error("expected a message in the body")
	}
}

package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusAndMessage(t *testing.T) {
	sentinel := errors.New("boom")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", Validation(sentinel, "bad input"), http.StatusBadRequest, "bad input"},
		{"wrapped upstream", fmt.Errorf("predict: %w", Upstream(sentinel, "failed to fetch weather data")), http.StatusBadGateway, "failed to fetch weather data"},
		{"not found", NotFound(nil, "fruit kiwi not found"), http.StatusNotFound, "fruit kiwi not found"},
		{"plain error", sentinel, http.StatusInternalServerError, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.err); got != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, got)
			}
			if got := Message(tt.err); got != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, got)
			}
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	sentinel := errors.New("region missing")
	err := fmt.Errorf("lookup: %w", Validation(sentinel, "invalid region"))

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected errors.Is to find the wrapped sentinel")
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected errors.As to find the AppError")
	}
	if appErr.Error() != "invalid region: region missing" {
		t.Errorf("unexpected error text %q", appErr.Error())
	}
}

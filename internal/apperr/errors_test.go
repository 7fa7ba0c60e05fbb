package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Abla25/roomradar/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("link is required")

	if err.Error() != "link is required" {
		t.Errorf("expected 'link is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid query", inner)

	if err.Error() != "invalid query: parse failed" {
		t.Errorf("expected 'invalid query: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("empty query")

	wrapped := fmt.Errorf("failed to parse: %w", original)
	doubleWrapped := fmt.Errorf("handler error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "empty query" {
		t.Errorf("expected 'empty query', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("handler error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestNewNotFound(t *testing.T) {
	err := apperr.NewNotFound("listing not found")

	if err.Error() != "listing not found" {
		t.Errorf("expected 'listing not found', got %q", err.Error())
	}

	wrapped := fmt.Errorf("report failed: %w", err)
	var nf *apperr.NotFoundError
	if !errors.As(wrapped, &nf) {
		t.Fatal("errors.As should find NotFoundError through wrapping")
	}
}

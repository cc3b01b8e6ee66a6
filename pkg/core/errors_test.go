package core

import (
	"errors"
	"testing"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	err := NewDegenerateGeometry("quad %d has a zero-length edge", 3)
	if !errors.Is(err, NewDegenerateGeometry("")) {
		t.Error("errors.Is should match on Kind regardless of message")
	}
	if errors.Is(err, NewInvalidInput("")) {
		t.Error("errors.Is should not match a different Kind")
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewInvalidInput("patchSize must be positive, got %v", -1.0)
	want := "InvalidInput: patchSize must be positive, got -1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

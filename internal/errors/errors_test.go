package errors

import (
	"errors"
	"testing"
)

func TestInvalidStopWordError(t *testing.T) {
	err := NewInvalidStopWordError("b\x01d")

	expectedMsg := `stop-word "b\x01d" contains a control byte`
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidStopWord) {
		t.Error("Expected error to match ErrInvalidStopWord sentinel")
	}
	if errors.Is(err, ErrInvalidID) {
		t.Error("Error should not match ErrInvalidID")
	}
}

func TestInvalidIDError(t *testing.T) {
	err := NewInvalidIDError(-1, "id must be non-negative")

	expectedMsg := "document id -1 is invalid: id must be non-negative"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidID) {
		t.Error("Expected error to match ErrInvalidID sentinel")
	}
}

func TestInvalidDocumentError(t *testing.T) {
	err := NewInvalidDocumentError(7)

	expectedMsg := "document 7 contains a control byte (value < 0x20)"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidDocument) {
		t.Error("Expected error to match ErrInvalidDocument sentinel")
	}
}

func TestInvalidQueryError(t *testing.T) {
	err := NewInvalidQueryError("--word", "minus-word must strip to a non-empty, non-minus token")

	if !errors.Is(err, ErrInvalidQuery) {
		t.Error("Expected error to match ErrInvalidQuery sentinel")
	}
	if errors.Is(err, ErrUnknownID) {
		t.Error("Error should not match ErrUnknownID")
	}
}

func TestUnknownIDError(t *testing.T) {
	err := NewUnknownIDError(42)

	expectedMsg := "document id 42 does not exist"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrUnknownID) {
		t.Error("Expected error to match ErrUnknownID sentinel")
	}
}

func TestErrorChaining(t *testing.T) {
	originalErr := NewUnknownIDError(5)
	wrappedErr := errors.Join(originalErr, errors.New("additional context"))

	if !errors.Is(wrappedErr, ErrUnknownID) {
		t.Error("Expected wrapped error to still match ErrUnknownID sentinel")
	}

	var idErr *UnknownIDError
	if !errors.As(wrappedErr, &idErr) {
		t.Error("Expected to be able to unwrap to UnknownIDError")
	}
	if idErr.ID != 5 {
		t.Errorf("Expected id 5, got %d", idErr.ID)
	}
}

// Package errors defines the error kinds raised by the engine's core.
// All of them are programmer- or input-visible; the core never retries
// or masks them internally.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core's error kinds. Callers match against these
// with errors.Is rather than comparing concrete types.
var (
	// ErrInvalidStopWord is returned when construct() is given a stop-word
	// containing a control byte.
	ErrInvalidStopWord = errors.New("invalid stop-word")

	// ErrInvalidID is returned when a document id is negative or already
	// exists on insert.
	ErrInvalidID = errors.New("invalid document id")

	// ErrInvalidDocument is returned when document text contains a
	// control byte.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidQuery is returned when a query contains a control byte or
	// a malformed minus-token.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrUnknownID is returned when removing a document id that does not
	// exist.
	ErrUnknownID = errors.New("unknown document id")
)

// InvalidStopWordError names the offending stop-word.
type InvalidStopWordError struct {
	Word string
}

func (e *InvalidStopWordError) Error() string {
	return fmt.Sprintf("stop-word %q contains a control byte", e.Word)
}

func (e *InvalidStopWordError) Is(target error) bool {
	return target == ErrInvalidStopWord
}

// NewInvalidStopWordError creates a new InvalidStopWordError
func NewInvalidStopWordError(word string) *InvalidStopWordError {
	return &InvalidStopWordError{Word: word}
}

// InvalidIDError names the offending document id and the reason it was rejected.
type InvalidIDError struct {
	ID     int
	Reason string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("document id %d is invalid: %s", e.ID, e.Reason)
}

func (e *InvalidIDError) Is(target error) bool {
	return target == ErrInvalidID
}

// NewInvalidIDError creates a new InvalidIDError
func NewInvalidIDError(id int, reason string) *InvalidIDError {
	return &InvalidIDError{ID: id, Reason: reason}
}

// InvalidDocumentError names the offending document id.
type InvalidDocumentError struct {
	ID int
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("document %d contains a control byte (value < 0x20)", e.ID)
}

func (e *InvalidDocumentError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// NewInvalidDocumentError creates a new InvalidDocumentError
func NewInvalidDocumentError(id int) *InvalidDocumentError {
	return &InvalidDocumentError{ID: id}
}

// InvalidQueryError names the offending token and the reason it was rejected.
type InvalidQueryError struct {
	Token  string
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("query token %q is invalid: %s", e.Token, e.Reason)
}

func (e *InvalidQueryError) Is(target error) bool {
	return target == ErrInvalidQuery
}

// NewInvalidQueryError creates a new InvalidQueryError
func NewInvalidQueryError(token, reason string) *InvalidQueryError {
	return &InvalidQueryError{Token: token, Reason: reason}
}

// UnknownIDError names the offending document id.
type UnknownIDError struct {
	ID int
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("document id %d does not exist", e.ID)
}

func (e *UnknownIDError) Is(target error) bool {
	return target == ErrUnknownID
}

// NewUnknownIDError creates a new UnknownIDError
func NewUnknownIDError(id int) *UnknownIDError {
	return &UnknownIDError{ID: id}
}

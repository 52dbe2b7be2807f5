package service

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to the HTTP boundary. Handlers translate them to
// status codes in respondError; services never leak gorm errors up.
var (
	// ErrNaoEncontrado covers unknown contracts, tokens (including
	// invalidated ones — an invalidated token is indistinguishable from a
	// nonexistent one to the public flow) and collaborator lookups.
	ErrNaoEncontrado = errors.New("registro não encontrado")

	// ErrCodigoInvalido is the identity-fragment mismatch. The message
	// never reveals the expected fragment nor the document number.
	ErrCodigoInvalido = errors.New("código de validação incorreto")
)

// ValidationError reports missing/malformed required fields for a
// contract type, field by field, so the UI can explain the problem.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dados inválidos: %d campo(s) com problema", len(e.Fields))
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// InvalidTransitionError reports an illegal status edge, naming both
// ends so the caller knows exactly which transition was rejected.
type InvalidTransitionError struct {
	De   string
	Para string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transição de status inválida: %s → %s", e.De, e.Para)
}

// ConflictError covers state conflicts: deleting a signed contract,
// signing a non-validated token, a blocked token.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// UpstreamError wraps a collaborator failure (customer/vehicle/store
// lookup) without losing the cause.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("falha ao consultar %s: %v", e.Op, e.Err) }
func (e *UpstreamError) Unwrap() error { return e.Err }

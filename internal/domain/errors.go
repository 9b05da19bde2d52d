package domain

import (
	"errors"
	"fmt"
)

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// LanguageRole tells which side of a translation pair a language belongs to.
type LanguageRole string

const (
	LanguageRole_Source LanguageRole = "source"
	LanguageRole_Target LanguageRole = "target"
)

// UnsupportedLanguageErr is returned when a language cannot be mapped to a supported code.
// For fallback purposes it counts as an unavailable provider.
type UnsupportedLanguageErr struct {
	domainErr
	Language string
	Role     LanguageRole
}

// NewUnsupportedLanguageErr creates a new UnsupportedLanguageErr.
func NewUnsupportedLanguageErr(language string, role LanguageRole) *UnsupportedLanguageErr {
	message := "Unsupported target language"
	if role == LanguageRole_Source {
		message = "Unsupported book language"
	}
	return &UnsupportedLanguageErr{
		domainErr: domainErr{message: message},
		Language:  language,
		Role:      role,
	}
}

// SameLanguageErr signals a translation whose source and target resolve to the same code.
// It is a no-op notice, not a failure.
type SameLanguageErr struct {
	domainErr
	Code string
}

// NewSameLanguageErr creates a new SameLanguageErr.
func NewSameLanguageErr(code string) *SameLanguageErr {
	return &SameLanguageErr{
		domainErr: domainErr{message: "Source and target languages are the same"},
		Code:      code,
	}
}

// ProviderErrKind classifies provider failures.
type ProviderErrKind string

const (
	ProviderErrKind_Unavailable     ProviderErrKind = "provider_unavailable"
	ProviderErrKind_DownloadFailed  ProviderErrKind = "download_failed"
	ProviderErrKind_InvocationError ProviderErrKind = "invocation_error"
	ProviderErrKind_InvalidResponse ProviderErrKind = "invalid_response"
	ProviderErrKind_AuthRequired    ProviderErrKind = "auth_required"
	ProviderErrKind_NetworkError    ProviderErrKind = "network_error"
	ProviderErrKind_HttpError       ProviderErrKind = "http_error"
)

// ProviderErr is a failure reported by an on-device, remote or dictionary provider.
type ProviderErr struct {
	Kind     ProviderErrKind
	Provider ProviderKind
	// Status is set for ProviderErrKind_HttpError.
	Status  int
	message string
	cause   error
}

// NewProviderErr creates a new ProviderErr.
func NewProviderErr(kind ProviderErrKind, provider ProviderKind, message string) *ProviderErr {
	return &ProviderErr{
		Kind:     kind,
		Provider: provider,
		message:  message,
	}
}

// NewHttpErr creates a ProviderErr for a non-2xx response.
func NewHttpErr(provider ProviderKind, status int, body string) *ProviderErr {
	message := fmt.Sprintf("HTTP error! status: %d", status)
	if body != "" {
		message = fmt.Sprintf("%s: %s", message, body)
	}
	return &ProviderErr{
		Kind:     ProviderErrKind_HttpError,
		Provider: provider,
		Status:   status,
		message:  message,
	}
}

// NewAuthRequiredErr creates a ProviderErr for a call attempted without a usable credential.
func NewAuthRequiredErr(provider ProviderKind) *ProviderErr {
	return NewProviderErr(ProviderErrKind_AuthRequired, provider, "authentication required")
}

// WithCause attaches the underlying error.
func (e *ProviderErr) WithCause(cause error) *ProviderErr {
	e.cause = cause
	return e
}

// Error returns the error message.
func (e *ProviderErr) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Provider, e.Kind, e.message)
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ProviderErr) Unwrap() error {
	return e.cause
}

// IsProviderErrKind reports whether err carries a ProviderErr of the given kind.
func IsProviderErrKind(err error, kind ProviderErrKind) bool {
	var pe *ProviderErr
	return errors.As(err, &pe) && pe.Kind == kind
}

// IsAuthRequired reports whether err must short-circuit a fallback chain.
func IsAuthRequired(err error) bool {
	return IsProviderErrKind(err, ProviderErrKind_AuthRequired)
}

// FallbackOutcome describes why a provider was abandoned.
type FallbackOutcome string

const (
	FallbackOutcome_Unavailable     FallbackOutcome = "unavailable"
	FallbackOutcome_InvocationError FallbackOutcome = "invocationError"
	FallbackOutcome_EmptyResult     FallbackOutcome = "emptyResult"
)

// FallbackOutcomeOf classifies a provider failure.
func FallbackOutcomeOf(err error) FallbackOutcome {
	var unsupported *UnsupportedLanguageErr
	if errors.As(err, &unsupported) {
		return FallbackOutcome_Unavailable
	}
	var pe *ProviderErr
	if errors.As(err, &pe) {
		switch pe.Kind {
		case ProviderErrKind_Unavailable:
			return FallbackOutcome_Unavailable
		case ProviderErrKind_InvalidResponse:
			return FallbackOutcome_EmptyResult
		}
	}
	return FallbackOutcome_InvocationError
}

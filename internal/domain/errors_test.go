package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackOutcomeOf(t *testing.T) {
	tests := map[string]struct {
		err  error
		want FallbackOutcome
	}{
		"unavailable": {
			err:  NewProviderErr(ProviderErrKind_Unavailable, ProviderKind_OnDevice, "not installed"),
			want: FallbackOutcome_Unavailable,
		},
		"unsupported-language": {
			err:  NewUnsupportedLanguageErr("Klingon", LanguageRole_Target),
			want: FallbackOutcome_Unavailable,
		},
		"invalid-response": {
			err:  NewProviderErr(ProviderErrKind_InvalidResponse, ProviderKind_Remote, "empty"),
			want: FallbackOutcome_EmptyResult,
		},
		"wrapped-invalid-response": {
			err:  fmt.Errorf("synonyms: %w", NewProviderErr(ProviderErrKind_InvalidResponse, ProviderKind_OnDevice, "empty")),
			want: FallbackOutcome_EmptyResult,
		},
		"http-error": {
			err:  NewHttpErr(ProviderKind_Remote, 502, ""),
			want: FallbackOutcome_InvocationError,
		},
		"download-failed": {
			err:  NewProviderErr(ProviderErrKind_DownloadFailed, ProviderKind_OnDevice, "pull failed"),
			want: FallbackOutcome_InvocationError,
		},
		"plain-error": {
			err:  errors.New("boom"),
			want: FallbackOutcome_InvocationError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackOutcomeOf(tt.err))
		})
	}
}

func TestProviderErr(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("call: %w", NewProviderErr(ProviderErrKind_NetworkError, ProviderKind_Remote, "request failed").WithCause(cause))

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsProviderErrKind(err, ProviderErrKind_NetworkError))
	assert.False(t, IsAuthRequired(err))
	assert.Equal(t, "call: remote network_error: request failed: connection refused", err.Error())

	assert.True(t, IsAuthRequired(fmt.Errorf("wrapped: %w", NewAuthRequiredErr(ProviderKind_Remote))))

	httpErr := NewHttpErr(ProviderKind_Remote, 401, "expired")
	assert.Equal(t, 401, httpErr.Status)
	assert.Equal(t, "remote http_error: HTTP error! status: 401: expired", httpErr.Error())
}

func TestLanguageErrors(t *testing.T) {
	assert.Equal(t, "Unsupported book language", NewUnsupportedLanguageErr("Elvish", LanguageRole_Source).Error())
	assert.Equal(t, "Unsupported target language", NewUnsupportedLanguageErr("Elvish", LanguageRole_Target).Error())
	assert.Equal(t, "Source and target languages are the same", NewSameLanguageErr("en").Error())
}

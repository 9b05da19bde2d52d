package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/adapters/inbound/http/gen"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/usecases"
)

func toError(err error) gen.ErrorResp {
	var (
		validation  *domain.ValidationErr
		unsupported *domain.UnsupportedLanguageErr
		same        *domain.SameLanguageErr
	)
	errResp := gen.ErrorResp{}
	switch {
	case errors.As(err, &validation), errors.As(err, &unsupported), errors.As(err, &same):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = err.Error()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func fromPtr[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func toToolRequest(capability domain.Capability, body gen.ToolRequest, auth domain.AuthSession) usecases.ToolRequest {
	return usecases.ToolRequest{
		Capability:     capability,
		Text:           body.Text,
		Mode:           domain.ProcessingMode(fromPtr(body.Mode)),
		SlotID:         fromPtr(body.SlotId),
		SourceLanguage: fromPtr(body.SourceLanguage),
		TargetLanguage: fromPtr(body.TargetLanguage),
		Auth:           auth,
	}
}

func toBookChatInput(body gen.ChatRequest, auth domain.AuthSession) usecases.BookChatInput {
	return usecases.BookChatInput{
		Message:           body.Message,
		AdditionalContext: fromPtr(body.Context),
		BookID:            fromPtr(body.BookId),
		SlotID:            fromPtr(body.SlotId),
		Auth:              auth,
	}
}

func toAvailabilityResp(capability domain.Capability, availability domain.Availability) gen.AvailabilityResp {
	return gen.AvailabilityResp{
		Capability:       string(capability),
		Availability:     gen.AvailabilityStatus(availability),
		RequiresDownload: availability.RequiresDownload(),
	}
}

// bearerToken extracts the access token of an Authorization header.
func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/adapters/inbound/http/gen"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/usecases"
)

// credentialHolder is implemented by sessions that can hand their tokens back to the UI.
type credentialHolder interface {
	Credentials() (accessToken, refreshToken string)
}

// RunTool streams one toolbar action as server-sent events.
func (api ReadingCompanionServer) RunTool(w http.ResponseWriter, r *http.Request, rawCapability gen.Capability, params gen.RunToolParams) {
	capability, err := domain.ParseCapability(rawCapability)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	var body gen.RunToolJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, badRequest("invalid request body"))
		return
	}

	stream, ok := newEventStream(w)
	if !ok {
		respondError(w, gen.ErrorResp{Error: gen.Error{Code: gen.INTERNALERROR, Message: "streaming not supported"}})
		return
	}

	auth, presented := api.openSession(r, params.XRefreshToken)
	err = api.RunToolUseCase.Execute(r.Context(), toToolRequest(capability, body, auth), stream.send)
	api.finishStream(w, stream, auth, presented, err, "RunTool")
}

// GetAvailability reports the on-device state of a capability.
func (api ReadingCompanionServer) GetAvailability(w http.ResponseWriter, r *http.Request, rawCapability gen.Capability, params gen.GetAvailabilityParams) {
	capability, err := domain.ParseCapability(rawCapability)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	availability, err := api.CheckAvailabilityUseCase.Query(r.Context(), usecases.AvailabilityQuery{
		Capability:     capability,
		SourceLanguage: fromPtr(params.SourceLanguage),
		TargetLanguage: fromPtr(params.TargetLanguage),
	})
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toAvailabilityResp(capability, availability))
}

// StreamBookChat streams a chat answer about the open book.
func (api ReadingCompanionServer) StreamBookChat(w http.ResponseWriter, r *http.Request, params gen.StreamBookChatParams) {
	var body gen.StreamBookChatJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, badRequest("invalid request body"))
		return
	}

	stream, ok := newEventStream(w)
	if !ok {
		respondError(w, gen.ErrorResp{Error: gen.Error{Code: gen.INTERNALERROR, Message: "streaming not supported"}})
		return
	}

	auth, presented := api.openSession(r, params.XRefreshToken)
	err := api.StreamBookChatUseCase.Execute(r.Context(), toBookChatInput(body, auth), stream.send)
	api.finishStream(w, stream, auth, presented, err, "StreamBookChat")
}

// openSession returns the shared session of the request's credentials and the access token it presented.
// Requests without credentials get a nil session.
func (api ReadingCompanionServer) openSession(r *http.Request, refreshToken *gen.RefreshToken) (domain.AuthSession, string) {
	access := bearerToken(r)
	refresh := fromPtr(refreshToken)
	if access == "" && refresh == "" {
		return nil, ""
	}
	return api.Sessions.Open(access, refresh), access
}

// finishStream answers errors raised before the first event as JSON and
// hands a refreshed credential back to the UI.
func (api ReadingCompanionServer) finishStream(w http.ResponseWriter, stream *eventStream, auth domain.AuthSession, presented string, err error, operation string) {
	if err != nil {
		if !stream.started {
			respondError(w, toError(err))
			return
		}
		api.Logger.Printf("%s: error during streaming: %v", operation, err)
		return
	}

	holder, ok := auth.(credentialHolder)
	if !ok {
		return
	}
	access, refresh := holder.Credentials()
	if access == "" || access == presented {
		return
	}
	if err := stream.send(domain.ToolEventType_CredentialsRefreshed, domain.ToolEventCredentialsRefreshed{
		AccessToken:  access,
		RefreshToken: refresh,
	}); err != nil {
		api.Logger.Printf("%s: failed to send refreshed credentials: %v", operation, err)
	}
}

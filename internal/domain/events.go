package domain

import "github.com/google/uuid"

// ToolEventType represents the type of event streamed to the UI during a tool invocation.
type ToolEventType string

const (
	ToolEventType_Loading              ToolEventType = "loading"
	ToolEventType_DownloadProgress     ToolEventType = "download_progress"
	ToolEventType_Delta                ToolEventType = "delta"
	ToolEventType_Notice               ToolEventType = "notice"
	ToolEventType_Result               ToolEventType = "result"
	ToolEventType_Failed               ToolEventType = "failed"
	ToolEventType_Stale                ToolEventType = "stale"
	ToolEventType_CredentialsRefreshed ToolEventType = "credentials_refreshed"
)

// NoticeLevel is the severity of a notice toast.
type NoticeLevel string

const (
	NoticeLevel_Info  NoticeLevel = "info"
	NoticeLevel_Error NoticeLevel = "error"
)

// ToolEventLoading carries the loading message shown while a provider works.
type ToolEventLoading struct {
	InvocationID uuid.UUID    `json:"invocation_id"`
	Message      string       `json:"message"`
	Provider     ProviderKind `json:"provider,omitempty"`
}

// ToolEventDownloadProgress reports an on-device model download.
type ToolEventDownloadProgress struct {
	InvocationID uuid.UUID `json:"invocation_id"`
	Percent      int       `json:"percent"`
	Message      string    `json:"message"`
}

// ToolEventDelta carries one stream chunk and the buffer accumulated so far.
type ToolEventDelta struct {
	InvocationID uuid.UUID    `json:"invocation_id"`
	Chunk        string       `json:"chunk"`
	Text         string       `json:"text"`
	Provider     ProviderKind `json:"provider"`
}

// ToolEventNotice is a user-visible toast that does not end the invocation by itself.
type ToolEventNotice struct {
	InvocationID uuid.UUID   `json:"invocation_id"`
	Level        NoticeLevel `json:"level"`
	Message      string      `json:"message"`
}

// ToolEventResult carries the committed result.
type ToolEventResult struct {
	InvocationID uuid.UUID       `json:"invocation_id"`
	Result       ToolResult      `json:"result"`
	Text         string          `json:"text"`
	StickyNote   StickyNoteDraft `json:"sticky_note"`
}

// ToolEventFailed ends an invocation whose chain was exhausted or short-circuited.
type ToolEventFailed struct {
	InvocationID uuid.UUID       `json:"invocation_id"`
	Message      string          `json:"message"`
	Outcome      FallbackOutcome `json:"outcome,omitempty"`
}

// ToolEventStale reports a result discarded because a newer one was committed to the slot.
type ToolEventStale struct {
	InvocationID uuid.UUID `json:"invocation_id"`
	SlotID       string    `json:"slot_id"`
	Generation   uint64    `json:"generation"`
}

// ToolEventCredentialsRefreshed hands the refreshed credential back to the UI.
type ToolEventCredentialsRefreshed struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ToolEventCallback is called for each event of a tool invocation.
type ToolEventCallback func(eventType ToolEventType, data any) error

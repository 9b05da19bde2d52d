package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCapability(t *testing.T) {
	tests := map[string]struct {
		raw     string
		want    Capability
		wantErr bool
	}{
		"translate":        {raw: "translate", want: Capability_Translate},
		"mixed-case":       {raw: " Summarize ", want: Capability_Summarize},
		"chat":             {raw: "chat", want: Capability_Chat},
		"pronounce-is-not": {raw: "pronounce", wantErr: true},
		"empty":            {raw: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseCapability(tt.raw)
			if tt.wantErr {
				var vErr *ValidationErr
				assert.ErrorAs(t, err, &vErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProcessingMode(t *testing.T) {
	tests := map[string]struct {
		raw     string
		want    ProcessingMode
		wantErr bool
	}{
		"empty-defaults-to-hybrid": {raw: "", want: ProcessingMode_Hybrid},
		"hybrid":                   {raw: "hybrid", want: ProcessingMode_Hybrid},
		"device-only":              {raw: "device-only", want: ProcessingMode_DeviceOnly},
		"client-alias":             {raw: "client", want: ProcessingMode_DeviceOnly},
		"unknown":                  {raw: "cloud", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseProcessingMode(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCapability_Family(t *testing.T) {
	assert.Equal(t, EngineFamily_Translation, Capability_Translate.Family())
	assert.Equal(t, EngineFamily_Prompt, Capability_Define.Family())
	assert.Equal(t, EngineFamily_Prompt, Capability_Synonym.Family())
	assert.Equal(t, EngineFamily_Rewriter, Capability_Simplify.Family())
	assert.Equal(t, EngineFamily_Writer, Capability_Explain.Family())
	assert.Equal(t, EngineFamily_Summarizer, Capability_Summarize.Family())
	assert.Equal(t, EngineFamily_None, Capability_Chat.Family())
}

func TestCapability_Flags(t *testing.T) {
	assert.True(t, Capability_Define.HasSentinel())
	assert.True(t, Capability_Synonym.HasSentinel())
	assert.False(t, Capability_Explain.HasSentinel())
	assert.Equal(t, "Translation failed", Capability_Translate.FailureMessage())
	assert.Equal(t, "Unable to get synonyms", Capability_Synonym.FailureMessage())
}

func TestIsSingleWord(t *testing.T) {
	assert.True(t, IsSingleWord("ephemeral"))
	assert.True(t, IsSingleWord("  ephemeral\n"))
	assert.False(t, IsSingleWord("an ephemeral moment"))
	assert.False(t, IsSingleWord(""))
}

func TestDownloadProgress_Percent(t *testing.T) {
	tests := map[string]struct {
		progress DownloadProgress
		want     int
	}{
		"ratio":             {progress: DownloadProgress{Loaded: 50, Total: 200}, want: 25},
		"floors":            {progress: DownloadProgress{Loaded: 999, Total: 1000}, want: 99},
		"fraction":          {progress: DownloadProgress{Loaded: 0.427}, want: 42},
		"complete":          {progress: DownloadProgress{Loaded: 1}, want: 100},
		"clamped":           {progress: DownloadProgress{Loaded: 300, Total: 200}, want: 100},
		"negative":          {progress: DownloadProgress{Loaded: -1, Total: 10}, want: 0},
		"nothing-loaded":    {progress: DownloadProgress{}, want: 0},
		"infinite-loaded":   {progress: DownloadProgress{Loaded: math.Inf(1), Total: 10}, want: 100},
		"infinite-fraction": {progress: DownloadProgress{Loaded: math.Inf(1)}, want: 100},
		"tiny-total":        {progress: DownloadProgress{Loaded: 1, Total: math.SmallestNonzeroFloat64}, want: 100},
		"nan":               {progress: DownloadProgress{Loaded: math.NaN(), Total: 10}, want: 0},
		"both-infinite":     {progress: DownloadProgress{Loaded: math.Inf(1), Total: math.Inf(1)}, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.progress.Percent())
		})
	}
}

func TestAvailability_RequiresDownload(t *testing.T) {
	assert.True(t, Availability_Downloadable.RequiresDownload())
	assert.True(t, Availability_Downloading.RequiresDownload())
	assert.False(t, Availability_Available.RequiresDownload())
	assert.False(t, Availability_Unavailable.RequiresDownload())
}

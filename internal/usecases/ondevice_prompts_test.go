package usecases

import (
	"context"
	"testing"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOnDevicePrompts(t *testing.T) {
	prompts, err := LoadOnDevicePrompts()
	require.NoError(t, err)

	for _, c := range domain.ToolCapabilities() {
		assert.Contains(t, prompts, c)
	}

	assert.Equal(t, "as-is", prompts[domain.Capability_Simplify].Session.Tone)
	assert.Equal(t, "tldr", prompts[domain.Capability_Summarize].Session.SummaryType)
	assert.Equal(t, "formal", prompts[domain.Capability_Explain].Session.Tone)
}

func TestOnDevicePrompt_Input(t *testing.T) {
	prompts, err := LoadOnDevicePrompts()
	require.NoError(t, err)

	tests := map[string]struct {
		capability  domain.Capability
		selection   string
		wantText    string
		textHas     string
		wantContext string
	}{
		"summarize-sends-selection": {
			capability: domain.Capability_Summarize,
			selection:  "A long chapter.",
			wantText:   "A long chapter.",
		},
		"explain-puts-selection-in-context": {
			capability:  domain.Capability_Explain,
			selection:   "Entropy",
			textHas:     "comprehensive explanation",
			wantContext: "Text to explain:\n\nEntropy",
		},
		"define-fills-word": {
			capability: domain.Capability_Define,
			selection:  "serendipity",
			textHas:    `definition of the word "serendipity"`,
		},
		"synonym-fills-word": {
			capability: domain.Capability_Synonym,
			selection:  "happy",
			textHas:    `synonyms for the word "happy"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			in := prompts[tt.capability].Input(tt.selection)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, in.Text)
			}
			if tt.textHas != "" {
				assert.Contains(t, in.Text, tt.textHas)
			}
			assert.Equal(t, tt.wantContext, in.Context)
		})
	}
}

func TestInitCapabilityRegistry_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	i := InitCapabilityRegistry{Engine: domain.NewMockOnDeviceEngine(t)}
	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	registry, err := depend.Resolve[domain.CapabilityRegistry]()
	require.NoError(t, err)
	assert.Equal(t, domain.ToolCapabilities(), registry.Capabilities())

	_, err = depend.Resolve[OnDevicePrompts]()
	assert.NoError(t, err)
}

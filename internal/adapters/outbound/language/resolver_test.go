package language

import (
	"context"
	"testing"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	tests := map[string]struct {
		input  string
		want   string
		wantOK bool
	}{
		"ui-name":              {input: "Spanish", want: "es", wantOK: true},
		"ui-name-any-case":     {input: "  japanese ", want: "ja", wantOK: true},
		"ui-alias":             {input: "Chinese (Mandarin)", want: "zh", wantOK: true},
		"ui-alias-script":      {input: "Chinese (Cantonese)", want: "zh-Hant", wantOK: true},
		"ui-alias-farsi":       {input: "Persian (Farsi)", want: "fa", wantOK: true},
		"code":                 {input: "fr", want: "fr", wantOK: true},
		"code-upper":           {input: "DE", want: "de", wantOK: true},
		"code-with-script":     {input: "zh-hant", want: "zh-Hant", wantOK: true},
		"regional-tag-to-base": {input: "en-US", want: "en", wantOK: true},
		"display-name":         {input: "Persian", want: "fa", wantOK: true},
		"empty":                {input: "", wantOK: false},
		"unknown-name":         {input: "Elvish", wantOK: false},
		"fictional-excluded":   {input: "Dothraki", wantOK: false},
	}

	r := NewResolver()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := r.Resolve(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitLanguageResolver_Initialize(t *testing.T) {
	ctx, err := InitLanguageResolver{}.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	r, err := depend.Resolve[domain.LanguageResolver]()
	assert.NoError(t, err)
	code, ok := r.Resolve("English")
	assert.True(t, ok)
	assert.Equal(t, "en", code)
}

package app

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/require"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	introspector := MermaidGraphIntrospector{}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{
				Key:         "KEY1",
				UsedDefault: true,
			},
		},
	}
	ctx := context.Background()

	err := introspector.Introspect(ctx, report)
	require.NoError(t, err)
	mermaidGraph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	require.NoError(t, err)
	require.NotEmpty(t, mermaidGraph, "Mermaid graph should be registered as a named dependency")
}

func TestReportLoggerIntrospector_Introspect(t *testing.T) {
	tests := map[string]struct {
		configs     []introspection.ConfigAccess
		expectedLog string
	}{
		"logs-defaulted-keys": {
			configs: []introspection.ConfigAccess{
				{Key: "HTTP_PORT", UsedDefault: true},
				{Key: "WORDSAPI_KEY", UsedDefault: false},
				{Key: "ONDEVICE_MODEL", UsedDefault: true},
			},
			expectedLog: "ReportLoggerIntrospector: 2 config keys use defaults: HTTP_PORT, ONDEVICE_MODEL\n",
		},
		"silent-without-defaults": {
			configs: []introspection.ConfigAccess{{Key: "WORDSAPI_KEY"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			introspector := ReportLoggerIntrospector{Logger: log.New(&buf, "", 0)}

			err := introspector.Introspect(t.Context(), introspection.Report{Configs: tt.configs})
			require.NoError(t, err)
			require.Equal(t, tt.expectedLog, buf.String())
		})
	}
}

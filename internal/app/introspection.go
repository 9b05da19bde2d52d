package app

import (
	"context"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector renders the application's dependencies and configuration as a Mermaid graph
// and registers it for the /introspect page.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector logs the configuration keys that fell back to their defaults at startup.
type ReportLoggerIntrospector struct {
	Logger *log.Logger
}

// Introspect implements introspection.Introspector.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	var defaulted []string
	for _, c := range r.Configs {
		if c.UsedDefault {
			defaulted = append(defaulted, c.Key)
		}
	}
	if len(defaulted) == 0 {
		return nil
	}
	i.Logger.Printf("ReportLoggerIntrospector: %d config keys use defaults: %s", len(defaulted), strings.Join(defaulted, ", "))
	return nil
}

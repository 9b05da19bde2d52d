package usecases

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/ondevice.yml
var onDevicePromptsFS embed.FS

// OnDevicePrompt holds the session options and per-call templates of one capability.
type OnDevicePrompt struct {
	Session domain.SessionOptions `yaml:"session"`
	Prompt  string                `yaml:"prompt"`
	Context string                `yaml:"context"`
}

// Input builds the session call for the selected text.
// Without a prompt template the selection itself is sent.
func (p OnDevicePrompt) Input(selection string) domain.PromptInput {
	in := domain.PromptInput{
		Text:    selection,
		Context: fillTemplate(p.Context, selection),
	}
	if p.Prompt != "" {
		in.Text = fillTemplate(p.Prompt, selection)
	}
	return in
}

// OnDevicePrompts maps capabilities to their on-device prompt.
type OnDevicePrompts map[domain.Capability]OnDevicePrompt

// LoadOnDevicePrompts decodes the embedded prompt file.
func LoadOnDevicePrompts() (OnDevicePrompts, error) {
	file, err := onDevicePromptsFS.Open("prompts/ondevice.yml")
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck

	prompts := OnDevicePrompts{}
	if err := yaml.NewDecoder(file).Decode(&prompts); err != nil {
		return nil, fmt.Errorf("failed to decode on-device prompts: %w", err)
	}
	for c := range prompts {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	return prompts, nil
}

func fillTemplate(template, selection string) string {
	if strings.Contains(template, "%[") {
		return fmt.Sprintf(template, selection)
	}
	return template
}

// InitCapabilityRegistry builds the on-device capability registry over the engine.
type InitCapabilityRegistry struct {
	Engine domain.OnDeviceEngine `resolve:""`
}

// Initialize registers the prompts and the CapabilityRegistry in the dependency container.
func (i InitCapabilityRegistry) Initialize(ctx context.Context) (context.Context, error) {
	prompts, err := LoadOnDevicePrompts()
	if err != nil {
		return ctx, err
	}

	entries := map[domain.Capability]domain.OnDeviceCapability{}
	for _, c := range domain.ToolCapabilities() {
		entries[c] = domain.NewEngineCapability(i.Engine, c.Family(), prompts[c].Session)
	}

	depend.Register(prompts)
	depend.Register(domain.NewCapabilityRegistry(entries))
	return ctx, nil
}

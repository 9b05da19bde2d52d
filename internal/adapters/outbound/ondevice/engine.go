package ondevice

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Runtime is the subset of the local runtime API used by the engine.
type Runtime interface {
	Tags(ctx context.Context) ([]Model, error)
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	ChatStream(ctx context.Context, req ChatRequest, onChunk func(ChatResponse) error) error
	Pull(ctx context.Context, model string, onStatus func(PullStatus) error) error
	Unload(ctx context.Context, model string) error
}

// Engine implements domain.OnDeviceEngine over a local model runtime.
// Every engine family is served by a model; translation may use a dedicated one.
type Engine struct {
	runtime       Runtime
	logger        *log.Logger
	models        map[domain.EngineFamily]string
	allowDownload bool

	mu      sync.Mutex
	pulling map[string]struct{}
	// leases counts the live sessions of each model.
	leases map[string]int
}

// NewEngine creates an Engine. translationModel falls back to model when empty.
func NewEngine(runtime Runtime, logger *log.Logger, model, translationModel string, allowDownload bool) *Engine {
	if translationModel == "" {
		translationModel = model
	}
	return &Engine{
		runtime: runtime,
		logger:  logger,
		models: map[domain.EngineFamily]string{
			domain.EngineFamily_Translation: translationModel,
			domain.EngineFamily_Prompt:      model,
			domain.EngineFamily_Writer:      model,
			domain.EngineFamily_Rewriter:    model,
			domain.EngineFamily_Summarizer:  model,
		},
		allowDownload: allowDownload,
		pulling:       map[string]struct{}{},
		leases:        map[string]int{},
	}
}

// Availability implements domain.OnDeviceEngine.
// An unreachable runtime reads as unavailable.
func (e *Engine) Availability(ctx context.Context, req domain.EngineRequest) (domain.Availability, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("family", string(req.Family)),
	))
	defer span.End()

	model, ok := e.models[req.Family]
	if !ok || model == "" {
		return domain.Availability_Unavailable, nil
	}
	if req.Family == domain.EngineFamily_Translation && (req.SourceLanguage == "" || req.TargetLanguage == "") {
		return domain.Availability_Unavailable, nil
	}

	installed, err := e.isInstalled(spanCtx, model)
	if err != nil {
		span.RecordError(err)
		return domain.Availability_Unavailable, nil
	}

	availability := e.availabilityOf(model, installed)
	span.SetAttributes(attribute.String("availability", string(availability)))
	return availability, nil
}

func (e *Engine) availabilityOf(model string, installed bool) domain.Availability {
	if installed {
		return domain.Availability_Available
	}
	e.mu.Lock()
	_, inFlight := e.pulling[model]
	e.mu.Unlock()
	switch {
	case inFlight:
		return domain.Availability_Downloading
	case e.allowDownload:
		return domain.Availability_Downloadable
	}
	return domain.Availability_Unavailable
}

// Create implements domain.OnDeviceEngine. A missing model is pulled first.
func (e *Engine) Create(ctx context.Context, req domain.EngineRequest, opts domain.SessionOptions, onProgress domain.ProgressFunc) (domain.ProviderSession, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("family", string(req.Family)),
	))
	defer span.End()

	model, ok := e.models[req.Family]
	if !ok || model == "" {
		err := domain.NewProviderErr(domain.ProviderErrKind_Unavailable, domain.ProviderKind_OnDevice,
			fmt.Sprintf("no model configured for %s", req.Family))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	installed, err := e.isInstalled(spanCtx, model)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, domain.NewProviderErr(domain.ProviderErrKind_Unavailable, domain.ProviderKind_OnDevice, "runtime unreachable").WithCause(err)
	}
	if !installed {
		if !e.allowDownload {
			err := domain.NewProviderErr(domain.ProviderErrKind_Unavailable, domain.ProviderKind_OnDevice,
				fmt.Sprintf("model %s is not installed", model))
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
		if err := e.pull(spanCtx, model, onProgress); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
	}

	e.acquire(model)
	return newSession(e.runtime, e.logger, model, systemPrompt(req, opts), e.release), nil
}

func (e *Engine) acquire(model string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.leases[model]++
}

// release drops one lease and reports whether it was the model's last live session.
func (e *Engine) release(model string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.leases[model] <= 1 {
		delete(e.leases, model)
		return true
	}
	e.leases[model]--
	return false
}

func (e *Engine) isInstalled(ctx context.Context, model string) (bool, error) {
	models, err := e.runtime.Tags(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range models {
		if sameModel(m.Name, model) || sameModel(m.Model, model) {
			return true, nil
		}
	}
	return false, nil
}

// pull downloads model, summing progress over its layers.
func (e *Engine) pull(ctx context.Context, model string, onProgress domain.ProgressFunc) error {
	e.mu.Lock()
	e.pulling[model] = struct{}{}
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		delete(e.pulling, model)
		e.mu.Unlock()
	}()

	e.logger.Printf("OnDeviceEngine: pulling model %s", model)
	layers := map[string]PullStatus{}
	err := e.runtime.Pull(ctx, model, func(status PullStatus) error {
		if status.Digest == "" || status.Total <= 0 {
			return nil
		}
		layers[status.Digest] = status
		var loaded, total int64
		for _, l := range layers {
			loaded += l.Completed
			total += l.Total
		}
		if onProgress != nil {
			onProgress(domain.DownloadProgress{Loaded: float64(loaded), Total: float64(total)})
		}
		return nil
	})
	if err != nil {
		e.logger.Printf("OnDeviceEngine: pull of %s failed: %v", model, err)
		return domain.NewProviderErr(domain.ProviderErrKind_DownloadFailed, domain.ProviderKind_OnDevice,
			fmt.Sprintf("failed to download %s", model)).WithCause(err)
	}
	if onProgress != nil {
		onProgress(domain.DownloadProgress{Loaded: 1, Total: 1})
	}
	return nil
}

// sameModel compares model names, reading a missing tag as "latest".
func sameModel(a, b string) bool {
	return withTag(a) == withTag(b)
}

func withTag(name string) string {
	if name == "" || strings.Contains(name, ":") {
		return name
	}
	return name + ":latest"
}

// InitOnDeviceEngine registers the on-device engine.
type InitOnDeviceEngine struct {
	HttpClient       *http.Client `resolve:""`
	Logger           *log.Logger  `resolve:""`
	EngineURL        string       `config:"ONDEVICE_ENGINE_URL" default:"http://localhost:11434"`
	Model            string       `config:"ONDEVICE_MODEL" default:"gemma3:1b"`
	TranslationModel string       `config:"ONDEVICE_TRANSLATION_MODEL" default:""`
	AllowDownload    bool         `config:"ONDEVICE_ALLOW_DOWNLOAD" default:"true"`
}

// Initialize registers domain.OnDeviceEngine in the dependency container.
func (i InitOnDeviceEngine) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.OnDeviceEngine](NewEngine(
		NewRuntimeClient(i.EngineURL, i.HttpClient),
		i.Logger,
		i.Model,
		i.TranslationModel,
		i.AllowDownload,
	))
	return ctx, nil
}

// Package http exposes the reading companion to the reading UI over REST and server-sent events.
package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/adapters/inbound/http/gen"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/telemetry"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/usecases"
	"github.com/rs/cors"
)

//go:generate go tool oapi-codegen -config gen/config.yaml openapi.yaml

var _ gen.ServerInterface = (*ReadingCompanionServer)(nil)

// ReadingCompanionServer is the HTTP server of the reading companion.
type ReadingCompanionServer struct {
	Port                     int                        `config:"HTTP_PORT" default:"8080"`
	ShutdownTimeout          time.Duration              `config:"HTTP_SHUTDOWN_TIMEOUT" default:"5s"`
	Logger                   *log.Logger                `resolve:""`
	RunToolUseCase           usecases.RunTool           `resolve:""`
	CheckAvailabilityUseCase usecases.CheckAvailability `resolve:""`
	StreamBookChatUseCase    usecases.StreamBookChat    `resolve:""`
	Sessions                 domain.AuthSessionStore    `resolve:""`
}

// Handler builds the routes with CORS and telemetry middleware.
func (api ReadingCompanionServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	// Create the OpenAPI handler with telemetry middleware
	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("duoread-api"),
		},
		ErrorHandlerFunc: paramErrorHandler,
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server and shuts it down when ctx is cancelled.
func (api ReadingCompanionServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler: api.Handler(),
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("ReadingCompanionServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), api.ShutdownTimeout)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("ReadingCompanionServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("ReadingCompanionServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the server is ready by calling its health endpoint.
func (api ReadingCompanionServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Healthz reports the server as alive.
func (api ReadingCompanionServer) Healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, gen.HealthResp{Status: "ok"})
}

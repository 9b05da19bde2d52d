package app

import (
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/adapters/inbound/http"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/adapters/inbound/workers"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/adapters/outbound/backend"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/adapters/outbound/config"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/adapters/outbound/dictionary"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/adapters/outbound/language"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/adapters/outbound/log"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/adapters/outbound/ondevice"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/adapters/outbound/time"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/telemetry"
	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewReadingCompanionApp creates and returns a new instance of the DuoRead reading companion.
func NewReadingCompanionApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&time.InitSystemClock{},
			&language.InitLanguageResolver{},
			&ondevice.InitOnDeviceEngine{},
			&backend.InitBackend{},
			&dictionary.InitDictionary{},

			&usecases.InitCapabilityRegistry{},
			&usecases.InitSlotRegistry{},
			&usecases.InitRunTool{},
			&usecases.InitCheckAvailability{},
			&usecases.InitStreamBookChat{},
			&usecases.InitRefreshCredentials{},
		).
		Host(
			&http.ReadingCompanionServer{},
			&workers.TokenRefresher{},
		).
		Introspect(&MermaidGraphIntrospector{})
}

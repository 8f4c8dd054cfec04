package cli

import (
	"fmt"

	"github.com/custodia-labs/quizbank/internal/adapters/driven/config/file"
	"github.com/custodia-labs/quizbank/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/quizbank/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/quizbank/internal/charset"
	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
	"github.com/custodia-labs/quizbank/internal/core/ports/driving"
	"github.com/custodia-labs/quizbank/internal/core/services"
	"github.com/custodia-labs/quizbank/internal/logger"
	"github.com/custodia-labs/quizbank/internal/normalisers"
	"github.com/custodia-labs/quizbank/internal/postprocessors"
)

// Services holds the driving ports the commands use.
type Services struct {
	Extraction driving.ExtractionService
	Validation driving.ValidationService
	History    driving.HistoryService
	Settings   driving.SettingsService

	// ConfigPath is the configuration file backing Settings.
	ConfigPath string

	// Close releases storage; may be nil.
	Close func() error
}

// appServices is built on first use. Tests assign it directly.
var appServices *Services

// loadServices returns the application services, wiring them on first use.
func loadServices() (*Services, error) {
	if appServices != nil {
		return appServices, nil
	}
	s, err := NewServices(configDir)
	if err != nil {
		return nil, err
	}
	appServices = s
	return s, nil
}

func closeServices() {
	if appServices == nil || appServices.Close == nil {
		return
	}
	if err := appServices.Close(); err != nil {
		logger.Warn("closing storage: %v", err)
	}
}

// NewServices wires the application from the configuration in dir.
// An empty dir selects the default configuration directory.
func NewServices(dir string) (*Services, error) {
	if dir == "" {
		var err error
		if dir, err = file.DefaultConfigDir(); err != nil {
			return nil, err
		}
	}

	configStore, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore, services.WithEncodingCheck(charset.ValidateName))
	settings := settingsService.Get()

	// Unknown encodings in a hand-edited file fall back to the defaults.
	decoder, err := charset.NewResolver(settings.Encodings, settings.EncodingMarkers)
	if err != nil {
		logger.Warn("%v; using default encodings %v", err, domain.DefaultEncodings)
		if decoder, err = charset.NewResolver(domain.DefaultEncodings, settings.EncodingMarkers); err != nil {
			return nil, fmt.Errorf("configuring encodings: %w", err)
		}
	}

	finalizer, err := postprocessors.BuildDefaultPipeline(settings)
	if err != nil {
		return nil, fmt.Errorf("configuring finalizer: %w", err)
	}

	var (
		runStore driven.RunStore
		closeFn  func() error
	)
	if settings.HistoryEnabled {
		store, err := sqlite.NewStore(settings.HistoryDir)
		if err != nil {
			logger.Warn("run history unavailable: %v", err)
		} else {
			runStore = store.RunStore()
			closeFn = store.Close
		}
	}

	bankStore := jsonfile.NewBankStore()

	return &Services{
		Extraction: services.NewExtractionService(
			decoder,
			normalisers.NewDefaultRegistry(settings.ImageMarkers),
			finalizer,
			bankStore,
			runStore,
		),
		Validation: services.NewValidationService(bankStore, runStore),
		History:    services.NewHistoryService(runStore),
		Settings:   settingsService,
		ConfigPath: configStore.Path(),
		Close:      closeFn,
	}, nil
}

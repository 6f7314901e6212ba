package analyzer

import (
	"fmt"

	"doclens/internal/config"
	"doclens/internal/port"
)

// ProviderFactory is a function that creates a DocumentAnalyzer from an
// analyzer config.
type ProviderFactory func(cfg *config.AnalyzerConfig) (port.DocumentAnalyzer, error)

// registry of analyzer provider factories, populated by init() in each
// provider package or explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an analyzer provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewAnalyzer creates a DocumentAnalyzer from the config using the
// registered factory.
func NewAnalyzer(cfg *config.AnalyzerConfig) (port.DocumentAnalyzer, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown analyzer provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

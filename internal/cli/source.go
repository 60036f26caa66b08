package cli

import (
	"fmt"

	"github.com/rshade/holocron/internal/catalog"
	"github.com/rshade/holocron/internal/config"
	"github.com/rshade/holocron/internal/source"
	"github.com/rshade/holocron/pkg/version"
)

// newSourceClient builds the collection client from the source section.
func newSourceClient(cfg *config.Config, opts ...source.Option) (*source.Client, error) {
	userAgent := cfg.Source.UserAgent
	if userAgent == config.DefaultUserAgent {
		userAgent = fmt.Sprintf("%s/%s", config.DefaultUserAgent, version.GetVersion())
	}

	client, err := source.NewClient(source.Config{
		BaseURL:           cfg.Source.BaseURL,
		Timeout:           cfg.Source.Timeout,
		MaxPages:          cfg.Source.MaxPages,
		RequestsPerSecond: cfg.Source.RequestsPerSecond,
		UserAgent:         userAgent,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("configuring source: %w", err)
	}
	return client, nil
}

// newStore builds an idle store collating for the configured locale.
func newStore(cfg *config.Config, opts ...catalog.StoreOption) (*catalog.Store, error) {
	comparator, err := catalog.NewComparatorForLocale(cfg.Display.Locale)
	if err != nil {
		return nil, fmt.Errorf("configuring locale: %w", err)
	}
	return catalog.NewStore(append([]catalog.StoreOption{catalog.WithComparator(comparator)}, opts...)...), nil
}

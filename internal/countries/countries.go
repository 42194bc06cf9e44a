package countries

import (
	"countries/internal/config"
	"countries/pkg/countrysource"
	"countries/pkg/storage"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Options configure aggregation and the snapshot cache. They are typically
// derived from application configuration.
type Options struct {
	// DefaultCountries is the list returned by Countries, in display order.
	DefaultCountries []string
	// MaxConcurrentLookups caps in-flight lookups per aggregation. Zero or
	// less means one goroutine per name.
	MaxConcurrentLookups int
	// SnapshotEnabled makes Countries read the stored snapshot first.
	SnapshotEnabled bool
	// SnapshotTTL is the age after which a stored snapshot is ignored.
	SnapshotTTL time.Duration
	// SnapshotInterval is the uniqueness window of refresh jobs.
	SnapshotInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultCountries:     cfg.RestCountries.DefaultCountries,
		MaxConcurrentLookups: cfg.RestCountries.MaxConcurrentLookups,
		SnapshotEnabled:      cfg.Snapshot.Enabled,
		SnapshotTTL:          cfg.Snapshot.TTL,
		SnapshotInterval:     cfg.Snapshot.Interval,
	}
}

// service is the concrete implementation of the Service interface.
type service struct {
	options Options
	source  countrysource.Client
	// storage is optional; snapshot operations are unavailable without it.
	storage storage.Storage
	tracer  trace.Tracer
	now     func() time.Time
}

// New creates a Service that looks countries up through source. store may be
// nil, in which case the default list is always aggregated live.
func New(source countrysource.Client, store storage.Storage, options Options) Service {
	return &service{
		options: options,
		source:  source,
		storage: store,
		tracer:  otel.Tracer("countries/internal/countries"),
		now:     time.Now,
	}
}

// Package restcountries provides a countrysource.Client implementation backed
// by the public REST Countries v3.1 API.
package restcountries

import (
	"context"
	"countries/pkg/countrysource"
	"countries/pkg/domain"
	"countries/pkg/metrics"
	"countries/pkg/serrors"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the public REST Countries v3.1 endpoint.
const DefaultBaseURL = "https://restcountries.com/v3.1"

const instrumentationName = "countries/pkg/countrysource/restcountries"

const (
	endpointName  = "name"
	endpointAlpha = "alpha"
)

// Client talks to the REST Countries API and fulfills the countrysource.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	baseURL    string       // baseURL is the API root without a trailing slash

	tracer   trace.Tracer
	lookups  metric.Int64Counter
	duration metric.Float64Histogram
}

// Option customizes a Client.
type Option func(*options)

type options struct {
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// WithMeterProvider records lookup counters and latencies on mp.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// WithTracerProvider creates lookup spans with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// ByName looks up every country matching name.
func (c *Client) ByName(ctx context.Context, name string, fullText bool) (domain.CountryList, error) {
	// https://restcountries.com/#endpoints-name
	u := c.baseURL + "/name/" + url.PathEscape(name)
	if fullText {
		u += "?fullText=true"
	}

	ctx, span := c.tracer.Start(ctx, "restcountries.ByName",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("country.name", name), attribute.Bool("country.full_text", fullText)))
	defer span.End()

	return c.get(ctx, span, endpointName, u)
}

// ByCodes looks up the countries identified by the given alpha-3 codes.
func (c *Client) ByCodes(ctx context.Context, codes []string) (domain.CountryList, error) {
	// https://restcountries.com/#endpoints-list-of-codes
	u := c.baseURL + "/alpha?" + url.Values{"codes": {strings.Join(codes, ",")}}.Encode()

	ctx, span := c.tracer.Start(ctx, "restcountries.ByCodes",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.StringSlice("country.codes", codes)))
	defer span.End()

	return c.get(ctx, span, endpointAlpha, u)
}

// get performs the request and records its outcome on span and the lookup instruments.
func (c *Client) get(ctx context.Context, span trace.Span, endpoint, rawURL string) (domain.CountryList, error) {
	start := time.Now()
	list, err := c.fetch(ctx, rawURL)

	outcome := "success"
	if err != nil {
		outcome = strings.ToLower(serrors.KindOf(err).Error())
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("country.results", len(list)))
	}
	attrs := metric.WithAttributes(attribute.String("endpoint", endpoint), attribute.String("outcome", outcome))
	c.lookups.Add(ctx, 1, attrs)
	c.duration.Record(ctx, time.Since(start).Seconds(), attrs)

	return list, err
}

func (c *Client) fetch(ctx context.Context, rawURL string) (domain.CountryList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "could not send request")
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, serrors.With(serrors.ErrNotFound, "no country matches the lookup")
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, serrors.With(serrors.ErrUnavailable,
			"lookup failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	list, err := DecodeCountries(b)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not decode response")
	}

	return list, nil
}

// Ensure Client conforms to the countrysource.Client interface at compile time.
var _ countrysource.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client to talk to the
// API rooted at baseURL. An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL string, opts ...Option) (*Client, error) {
	o := options{
		meterProvider:  noop.NewMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	meter := o.meterProvider.Meter(instrumentationName)
	lookups, err := meter.Int64Counter("countrysource.lookups",
		metric.WithDescription("Number of lookups sent to the country source"))
	if err != nil {
		return nil, fmt.Errorf("could not create lookups counter: %w", err)
	}
	duration, err := meter.Float64Histogram("countrysource.lookup.duration",
		metric.WithDescription("Latency of lookups sent to the country source"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create lookup duration histogram: %w", err)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		tracer:     o.tracerProvider.Tracer(instrumentationName),
		lookups:    lookups,
		duration:   duration,
	}, nil
}

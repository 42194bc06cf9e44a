// Package session holds the state of one interactive browsing session: the
// aggregated country list, the local filter criteria and the dark mode flag.
//
// Aggregations are tagged with a request generation and only the result of
// the most recently issued one is kept. Searches are debounced.
package session

import (
	"context"
	"countries/internal/countries"
	"countries/internal/preferences"
	"countries/pkg/domain"
	"countries/pkg/logger"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultSearchDebounce is used when Options.SearchDebounce is zero.
const DefaultSearchDebounce = 500 * time.Millisecond

// Options configure a Session.
type Options struct {
	// User owns the dark mode preference.
	User domain.UserID
	// SearchDebounce is the input inactivity after which a search is dispatched.
	SearchDebounce time.Duration
	// OnChange, when set, is called after every applied aggregation result and
	// dark mode change. It must not call back into the session synchronously
	// with a blocking operation.
	OnChange func(State)
}

// State is a point-in-time view of the session.
type State struct {
	// Query is the search text of the applied result, empty for the default list.
	Query    string
	Criteria domain.FilterCriteria
	// Visible is the filtered list.
	Visible  domain.CountryList
	Total    int
	Err      error
	Loading  bool
	DarkMode bool
}

// Session is safe for concurrent use.
type Session struct {
	countries countries.Service
	prefs     preferences.Service
	options   Options

	// ctx is the base context of debounced dispatches.
	ctx         context.Context
	debouncer   *Debouncer
	generations Generations

	mu       sync.Mutex
	list     domain.CountryList
	query    string
	err      error
	loading  bool
	criteria domain.FilterCriteria
	darkMode bool
}

// New creates a session and reads the stored dark mode once. Nothing is
// aggregated until Load or Search is called.
func New(ctx context.Context, cs countries.Service, prefs preferences.Service, options Options) (*Session, error) {
	if options.SearchDebounce == 0 {
		options.SearchDebounce = DefaultSearchDebounce
	}

	dark, err := prefs.DarkMode(ctx, options.User)
	if err != nil {
		return nil, fmt.Errorf("could not load dark mode preference: %w", err)
	}

	return &Session{
		countries: cs,
		prefs:     prefs,
		options:   options,
		ctx:       context.WithoutCancel(ctx),
		debouncer: NewDebouncer(options.SearchDebounce),
		darkMode:  dark,
	}, nil
}

// Load aggregates the default list and waits for the result.
func (s *Session) Load(ctx context.Context) error {
	s.debouncer.Cancel()

	return s.dispatch(ctx, "")
}

// Search schedules an aggregation of query once the input has been idle for
// the debounce period. An empty query reloads the default list.
func (s *Session) Search(query string) {
	s.debouncer.Debounce(func() {
		_ = s.dispatch(s.ctx, query)
	})
}

// SearchNow cancels any pending debounced search and aggregates query immediately.
func (s *Session) SearchNow(ctx context.Context, query string) error {
	s.debouncer.Cancel()

	return s.dispatch(ctx, query)
}

// dispatch runs one aggregation under a fresh generation. The returned error
// is the aggregation error even when the result was discarded as stale.
func (s *Session) dispatch(ctx context.Context, query string) error {
	s.mu.Lock()
	gen := s.generations.Next()
	s.loading = true
	s.mu.Unlock()

	var (
		list domain.CountryList
		err  error
	)
	if query == "" {
		list, err = s.countries.Countries(ctx)
	} else {
		list, err = s.countries.Search(ctx, query)
	}

	s.mu.Lock()
	if !s.generations.IsLatest(gen) {
		s.mu.Unlock()
		logger.Debug(ctx, "discarding stale aggregation result",
			zap.Uint64("generation", gen), zap.String("query", query), zap.Error(err))

		return err
	}
	s.loading = false
	s.query = query
	if err != nil {
		// a failed batch shows no data and is not retried
		s.list = nil
		s.err = err
		logger.Warn(ctx, "country aggregation failed", zap.String("query", query), zap.Error(err))
	} else {
		s.list = list
		s.err = nil
	}
	state := s.stateLocked()
	s.mu.Unlock()

	s.notify(state)

	return err
}

// SetFilter sets the local text criterion. No aggregation is issued.
func (s *Session) SetFilter(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria.Text = text
}

// SetRegion sets the local region criterion; "" or "All" clears it.
func (s *Session) SetRegion(region domain.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria.Region = region
}

// Visible returns the current list filtered by the current criteria.
func (s *Session) Visible() domain.CountryList {
	s.mu.Lock()
	defer s.mu.Unlock()

	return countries.Filter(s.list, s.criteria)
}

// Err returns the error of the last applied aggregation.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	return State{
		Query:    s.query,
		Criteria: s.criteria,
		Visible:  countries.Filter(s.list, s.criteria),
		Total:    len(s.list),
		Err:      s.err,
		Loading:  s.loading,
		DarkMode: s.darkMode,
	}
}

// DarkMode returns the session's dark mode flag.
func (s *Session) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.darkMode
}

// ToggleDarkMode persists the flipped preference and then updates the
// session. On failure the session keeps its current value.
func (s *Session) ToggleDarkMode(ctx context.Context) (bool, error) {
	pref, err := s.prefs.ToggleDarkMode(ctx, s.options.User)
	if err != nil {
		return s.DarkMode(), fmt.Errorf("could not toggle dark mode: %w", err)
	}

	s.mu.Lock()
	s.darkMode = pref.DarkMode
	state := s.stateLocked()
	s.mu.Unlock()

	s.notify(state)

	return pref.DarkMode, nil
}

// Detail fetches a country with its border names. It does not change the
// session state.
func (s *Session) Detail(ctx context.Context, name string) (*domain.CountryDetail, error) {
	return s.countries.Detail(ctx, name) //nolint: wrapcheck
}

// Close drops a pending search and waits for a running one to finish.
func (s *Session) Close() {
	s.debouncer.Stop()
}

func (s *Session) notify(state State) {
	if s.options.OnChange != nil {
		s.options.OnChange(state)
	}
}

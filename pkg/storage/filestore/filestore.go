// Package filestore implements storage.PreferenceStorage on top of a single
// YAML file. It backs the CLI, where running a database is not an option.
package filestore

import (
	"context"
	"countries/pkg/domain"
	"countries/pkg/storage"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type filePreference struct {
	DarkMode  bool      `yaml:"darkMode"`
	UpdatedAt time.Time `yaml:"updatedAt"`
}

type fileContents struct {
	Preferences map[string]filePreference `yaml:"preferences"`
}

// Store keeps preferences in a YAML file. Every change rewrites the whole file
// through a temporary file that is synced and renamed over the original, so a
// crash never leaves a partially written file behind.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// New returns a Store persisting to path. The parent directory is created when
// missing; the file itself is created on the first write.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty preferences file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("could not create preferences dir: %w", err)
	}

	return &Store{path: path, now: time.Now}, nil
}

// Preference returns the stored preference of user, or nil when absent.
func (s *Store) Preference(_ context.Context, user domain.UserID) (*domain.Preference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents, err := s.read()
	if err != nil {
		return nil, err
	}
	p, ok := contents.Preferences[user.String()]
	if !ok {
		return nil, nil
	}

	return &domain.Preference{UserID: user, DarkMode: p.DarkMode, UpdatedAt: p.UpdatedAt}, nil
}

// StorePreference replaces the preference of pref.UserID.
func (s *Store) StorePreference(ctx context.Context, pref domain.Preference) (*domain.Preference, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	contents, err := s.read()
	if err != nil {
		return nil, err
	}
	if contents.Preferences == nil {
		contents.Preferences = map[string]filePreference{}
	}
	stored := filePreference{DarkMode: pref.DarkMode, UpdatedAt: s.now().UTC()}
	contents.Preferences[pref.UserID.String()] = stored

	if err := s.write(contents); err != nil {
		return nil, err
	}

	return &domain.Preference{UserID: pref.UserID, DarkMode: stored.DarkMode, UpdatedAt: stored.UpdatedAt}, nil
}

// TogglePreference flips the dark mode of user. The read and the write happen
// under one lock.
func (s *Store) TogglePreference(ctx context.Context, user domain.UserID) (*domain.Preference, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	contents, err := s.read()
	if err != nil {
		return nil, err
	}
	if contents.Preferences == nil {
		contents.Preferences = map[string]filePreference{}
	}
	current := contents.Preferences[user.String()]
	stored := filePreference{DarkMode: !current.DarkMode, UpdatedAt: s.now().UTC()}
	contents.Preferences[user.String()] = stored

	if err := s.write(contents); err != nil {
		return nil, err
	}

	return &domain.Preference{UserID: user, DarkMode: stored.DarkMode, UpdatedAt: stored.UpdatedAt}, nil
}

func (s *Store) read() (fileContents, error) {
	var contents fileContents
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return contents, nil
	}
	if err != nil {
		return contents, fmt.Errorf("could not read preferences file: %w", err)
	}
	if err := yaml.Unmarshal(b, &contents); err != nil {
		return contents, fmt.Errorf("could not parse preferences file: %w", err)
	}

	return contents, nil
}

func (s *Store) write(contents fileContents) error {
	b, err := yaml.Marshal(contents)
	if err != nil {
		return fmt.Errorf("could not encode preferences: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp preferences file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("could not write temp preferences file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("could not sync temp preferences file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temp preferences file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("could not replace preferences file: %w", err)
	}

	return nil
}

var _ storage.PreferenceStorage = (*Store)(nil)

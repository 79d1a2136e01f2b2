// FILE: preferences/service.go

package preferences

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/illmade-knight/contactbook/internal/observe"
	"github.com/rs/zerolog"
)

// Service owns the display preferences. Each setter writes both fields
// through to the Settings backend immediately.
type Service struct {
	mu        sync.RWMutex
	settings  Settings
	prefs     Preferences
	observers observe.Registry[Preferences]
	logger    zerolog.Logger
}

// Open creates a Service and restores both preferences from settings.
// The two reads are independent; each falls back to its default on any failure.
func Open(ctx context.Context, settings Settings, logger zerolog.Logger) *Service {
	s := &Service{
		settings: settings,
		prefs:    Defaults(),
		logger:   logger.With().Str("component", "preferences").Logger(),
	}
	s.prefs.FontSize = s.loadFontSize(ctx)
	s.prefs.BackgroundColor = s.loadBackgroundColor(ctx)
	return s
}

func (s *Service) loadFontSize(ctx context.Context) int {
	size, err := s.settings.Int(ctx, KeyFontSize)
	switch {
	case errors.Is(err, ErrNotSet):
		return DefaultFontSize
	case err != nil:
		s.logger.Warn().Err(err).Msg("Failed to read font size, using default")
		return DefaultFontSize
	case size == 0:
		// 0 was historically written to mean "never set".
		return DefaultFontSize
	}
	return size
}

func (s *Service) loadBackgroundColor(ctx context.Context) Color {
	blob, err := s.settings.Blob(ctx, KeyBackgroundColor)
	switch {
	case errors.Is(err, ErrNotSet):
		return White
	case err != nil:
		s.logger.Warn().Err(err).Msg("Failed to read background color, using white")
		return White
	}
	c, err := decodeColor(blob)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Stored background color is unreadable, using white")
		return White
	}
	return c
}

// Preferences returns the current values.
func (s *Service) Preferences() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// FontSize returns the current font size.
func (s *Service) FontSize() int {
	return s.Preferences().FontSize
}

// BackgroundColor returns the current background color.
func (s *Service) BackgroundColor() Color {
	return s.Preferences().BackgroundColor
}

// SetFontSize updates the font size and persists both preferences.
// A non-nil error wraps ErrPersist; the new value is kept in memory regardless.
func (s *Service) SetFontSize(ctx context.Context, size int) error {
	s.mu.Lock()
	s.prefs.FontSize = size
	err := s.persistLocked(ctx)
	current := s.prefs
	s.mu.Unlock()

	s.observers.Notify(current)
	return err
}

// SetBackgroundColor updates the background color and persists both preferences.
// A color that cannot be encoded is kept in memory but not written.
func (s *Service) SetBackgroundColor(ctx context.Context, c Color) error {
	s.mu.Lock()
	s.prefs.BackgroundColor = c
	err := s.persistLocked(ctx)
	current := s.prefs
	s.mu.Unlock()

	s.observers.Notify(current)
	return err
}

// Subscribe registers fn to receive the preferences after every change.
func (s *Service) Subscribe(fn func(Preferences)) (cancel func()) {
	return s.observers.Subscribe(fn)
}

func (s *Service) persistLocked(ctx context.Context) error {
	var errs []error
	if err := s.settings.SetInt(ctx, KeyFontSize, s.prefs.FontSize); err != nil {
		errs = append(errs, fmt.Errorf("font size: %w", err))
	}

	blob, err := encodeColor(s.prefs.BackgroundColor)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Background color not written, it cannot be encoded")
	} else if err := s.settings.SetBlob(ctx, KeyBackgroundColor, blob); err != nil {
		errs = append(errs, fmt.Errorf("background color: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to persist preferences, keeping in-memory changes")
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// Package settings holds the storefront display settings (theme, language)
// and persists them under their own storage keys.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sync"

	"techstore/internal/domain"
	"techstore/internal/storage"
)

type Service struct {
	mu       sync.Mutex
	theme    domain.Theme
	language domain.Language
	store    storage.Store
	logger   *log.Logger
}

func New(store storage.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		theme:    domain.ThemeLight,
		language: domain.LanguageEN,
		store:    store,
		logger:   logger,
	}
}

// Load rehydrates persisted settings. Absent or unparseable values keep the
// defaults.
func (s *Service) Load(ctx context.Context) {
	if raw, err := s.store.Get(ctx, storage.KeyTheme); err == nil {
		var v string
		if json.Unmarshal(raw, &v) == nil {
			if theme, err := domain.ParseTheme(v); err == nil {
				s.mu.Lock()
				s.theme = theme
				s.mu.Unlock()
			}
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Printf("settings: read theme: %v", err)
	}
	if raw, err := s.store.Get(ctx, storage.KeyLanguage); err == nil {
		var v string
		if json.Unmarshal(raw, &v) == nil {
			if lang, err := domain.ParseLanguage(v); err == nil {
				s.mu.Lock()
				s.language = lang
				s.mu.Unlock()
			}
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Printf("settings: read language: %v", err)
	}
}

func (s *Service) Theme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Service) Language() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetTheme updates and persists the theme. A failed write keeps the
// in-memory value.
func (s *Service) SetTheme(ctx context.Context, theme domain.Theme) error {
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	if err := storage.WriteJSON(ctx, s.store, storage.KeyTheme, string(theme)); err != nil {
		s.logger.Printf("settings: theme not persisted: %v", err)
	}
	return nil
}

// ToggleTheme flips light/dark and returns the new theme.
func (s *Service) ToggleTheme(ctx context.Context) domain.Theme {
	s.mu.Lock()
	s.theme = s.theme.Opposite()
	next := s.theme
	s.mu.Unlock()
	if err := storage.WriteJSON(ctx, s.store, storage.KeyTheme, string(next)); err != nil {
		s.logger.Printf("settings: theme not persisted: %v", err)
	}
	return next
}

// SetLanguage updates and persists the language.
func (s *Service) SetLanguage(ctx context.Context, lang domain.Language) error {
	s.mu.Lock()
	s.language = lang
	s.mu.Unlock()
	if err := storage.WriteJSON(ctx, s.store, storage.KeyLanguage, string(lang)); err != nil {
		s.logger.Printf("settings: language not persisted: %v", err)
	}
	return nil
}

// Package contact collects contact-form submissions into the persisted
// message list.
package contact

import (
	"context"
	"errors"
	"io"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"techstore/internal/domain"
	"techstore/internal/storage"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	ErrNameRequired    = errors.New("name required")
	ErrEmailInvalid    = errors.New("valid email required")
	ErrMessageRequired = errors.New("message required")
)

type Service struct {
	mu       sync.Mutex
	messages []domain.ContactMessage
	store    storage.Store
	logger   *log.Logger
	now      func() time.Time
}

func New(store storage.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// Load rehydrates previously submitted messages.
func (s *Service) Load(ctx context.Context) error {
	var saved []domain.ContactMessage
	if err := storage.ReadJSON(ctx, s.store, storage.KeyContactMessages, &saved); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	s.mu.Lock()
	s.messages = saved
	s.mu.Unlock()
	return nil
}

// Submit validates and records one message. Validation failures are user
// facing, never fatal.
func (s *Service) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return nil, ErrEmailInvalid
	}
	if strings.TrimSpace(message) == "" {
		return nil, ErrMessageRequired
	}

	msg := domain.ContactMessage{
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Message:   strings.TrimSpace(message),
		Timestamp: s.now().UTC(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	if err := storage.WriteJSON(ctx, s.store, storage.KeyContactMessages, s.messages); err != nil {
		s.logger.Printf("contact: messages not persisted: %v", err)
	}
	s.mu.Unlock()

	return &msg, nil
}

// Messages returns a copy of all recorded messages in submission order.
func (s *Service) Messages() []domain.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ContactMessage(nil), s.messages...)
}

// Package settings provides Store, the single holder of the export settings.
// Every successful setter call is persisted before it returns.
package settings

import (
	"fmt"
	"log"

	"github.com/umputun/chatpick/pkg/domain"
)

//go:generate moq -out mocks/repository.go -pkg mocks -skip-ensure -fmt goimports . Repository

// Repository loads and saves the whole settings record
type Repository interface {
	Exists() (bool, error)
	Load() (domain.Settings, error)
	Save(s domain.Settings) error
}

// Store holds the current settings and writes them through to the repository
type Store struct {
	repo Repository
	cur  domain.Settings
}

// New makes a store from the repository. A missing backing file is initialized
// with all fields unset and saved right away. Malformed stored dates fail
// with domain.ErrMalformedDate.
func New(repo Repository) (*Store, error) {
	exists, err := repo.Exists()
	if err != nil {
		return nil, fmt.Errorf("check settings: %w", err)
	}

	res := &Store{repo: repo}
	if !exists {
		if err := repo.Save(res.cur); err != nil {
			return nil, fmt.Errorf("init settings: %w", err)
		}
		log.Printf("[INFO] initialized empty settings")
		return res, nil
	}

	if res.cur, err = repo.Load(); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	log.Printf("[DEBUG] loaded settings %v", res.cur.Snapshot())
	return res, nil
}

// Settings returns a copy of the current settings
func (s *Store) Settings() domain.Settings {
	return s.cur.Clone()
}

// Snapshot returns the display strings of all fields, see domain.Settings.Snapshot
func (s *Store) Snapshot() []string {
	return s.cur.Snapshot()
}

// Complete reports whether all fields are set to non-empty values
func (s *Store) Complete() bool {
	return s.cur.Complete()
}

// SetChatName stores the chat name as given
func (s *Store) SetChatName(value string) error {
	return s.update(domain.FieldChatName, func(st *domain.Settings) { st.ChatName = value })
}

// SetPrefix stores the prefix as given
func (s *Store) SetPrefix(value string) error {
	return s.update(domain.FieldPrefix, func(st *domain.Settings) { st.Prefix = value })
}

// SetKeywords stores normalized comma-separated keywords. Input without any
// non-blank token stores an empty list.
func (s *Store) SetKeywords(raw string) error {
	keywords := domain.NormalizeKeywords(raw)
	return s.update(domain.FieldKeywords, func(st *domain.Settings) { st.Keywords = keywords })
}

// SetDateFrom parses dd.mm.yyyy text and stores it as the first day of the range
func (s *Store) SetDateFrom(text string) error {
	d, err := domain.ParseDate(text)
	if err != nil {
		return err
	}
	return s.update(domain.FieldDateFrom, func(st *domain.Settings) { st.DateFrom = &d })
}

// SetDateTo parses dd.mm.yyyy text and stores it as the last day of the range
func (s *Store) SetDateTo(text string) error {
	d, err := domain.ParseDate(text)
	if err != nil {
		return err
	}
	return s.update(domain.FieldDateTo, func(st *domain.Settings) { st.DateTo = &d })
}

// Set dispatches raw input to the setter of the field
func (s *Store) Set(field domain.Field, value string) error {
	switch field {
	case domain.FieldChatName:
		return s.SetChatName(value)
	case domain.FieldPrefix:
		return s.SetPrefix(value)
	case domain.FieldKeywords:
		return s.SetKeywords(value)
	case domain.FieldDateFrom:
		return s.SetDateFrom(value)
	case domain.FieldDateTo:
		return s.SetDateTo(value)
	default:
		return fmt.Errorf("unknown field %s", field)
	}
}

// update applies fn to a copy of the current settings, saves the copy and
// only then makes it current, so a failed save leaves the store unchanged
func (s *Store) update(field domain.Field, fn func(st *domain.Settings)) error {
	next := s.cur.Clone()
	fn(&next)
	if err := s.repo.Save(next); err != nil {
		return fmt.Errorf("save %s: %w", field, err)
	}
	s.cur = next
	log.Printf("[DEBUG] saved %s", field)
	return nil
}

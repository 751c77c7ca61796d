package services

import (
	"context"
	"fmt"

	"github.com/aimcal/birthdaykeeper/internal/common"
	"github.com/aimcal/birthdaykeeper/internal/logging"
	"github.com/aimcal/birthdaykeeper/internal/models"
	"github.com/aimcal/birthdaykeeper/internal/storage"
	"github.com/google/uuid"
)

// BirthdayService defines birthday bookkeeping for one logged-in user.
// There is deliberately no update operation: entries are created and
// deleted, never edited.
type BirthdayService interface {
	Add(ctx context.Context, entry models.Birthday) (models.Birthday, error)
	List(ctx context.Context, userID string) ([]models.Birthday, error)
	Get(ctx context.Context, userID, id string) (models.Birthday, error)
	Delete(ctx context.Context, id string) error
}

type birthdayService struct {
	store *storage.Store
	log   logging.Logger
}

// NewBirthdayService constructs a BirthdayService over the given store.
func NewBirthdayService(store *storage.Store, log logging.Logger) BirthdayService {
	return &birthdayService{store: store, log: log}
}

// Add validates entry, assigns a fresh id, and appends it to the store.
func (s *birthdayService) Add(ctx context.Context, entry models.Birthday) (models.Birthday, error) {
	if err := entry.Validate(); err != nil {
		return models.Birthday{}, err
	}

	entry.ID = uuid.NewString()
	if err := s.store.Birthdays().Create(ctx, entry); err != nil {
		return models.Birthday{}, fmt.Errorf("saving error: %w", err)
	}

	s.log.Info(ctx, "birthday added", "id", entry.ID, "user_id", entry.UserID)
	return entry, nil
}

// List returns the user's birthdays in stored order.
func (s *birthdayService) List(ctx context.Context, userID string) ([]models.Birthday, error) {
	return s.store.Birthdays().ListFor(ctx, userID)
}

// Get returns one of the user's birthdays by id, or common.ErrNotFound.
func (s *birthdayService) Get(ctx context.Context, userID, id string) (models.Birthday, error) {
	entries, err := s.store.Birthdays().ListFor(ctx, userID)
	if err != nil {
		return models.Birthday{}, err
	}
	for _, b := range entries {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Birthday{}, fmt.Errorf("birthday %q: %w", id, common.ErrNotFound)
}

// Delete removes the entry by id. Absent ids are a no-op.
func (s *birthdayService) Delete(ctx context.Context, id string) error {
	if err := s.store.Birthdays().Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting birthday: %w", err)
	}
	s.log.Info(ctx, "birthday deleted", "id", id)
	return nil
}

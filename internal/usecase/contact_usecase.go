package usecase

import (
	"context"
	"fmt"
	"time"

	"go-ishop-backend/internal/domain"
	"go-ishop-backend/internal/forms"
)

type contactUsecase struct {
	store domain.MessageStore
	now   func() time.Time
}

// NewContactUsecase creates the contact usecase. The clock is injected so
// the derived age string is testable; production callers pass time.Now.
func NewContactUsecase(store domain.MessageStore, now func() time.Time) domain.ContactUsecase {
	return &contactUsecase{store: store, now: now}
}

// SubmitMessage builds the flat export record for a validated submission and
// writes it through the message store. Nothing is written for rejected
// submissions; the caller only reaches this point with a valid record.
func (u *contactUsecase) SubmitMessage(ctx context.Context, sub *domain.ContactSubmission) error {
	age := "N/A"
	if sub.BirthDate != nil {
		today := u.now()
		years := forms.AgeYears(today, *sub.BirthDate)
		months := forms.AgeMonths(today, *sub.BirthDate)
		age = fmt.Sprintf("%d years and %d months", years, months)
	}

	record := &domain.MessageRecord{
		FirstName:   sub.FirstName,
		LastName:    sub.LastName,
		Age:         age,
		Email:       sub.Email,
		MessageType: sub.MessageType,
		Subject:     sub.Subject,
		MinWaitDays: sub.MinWaitDays,
		Message:     sub.Message,
	}

	if _, err := u.store.Save(ctx, record); err != nil {
		return fmt.Errorf("export contact message: %w", err)
	}

	return nil
}

package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/form"
)

// ContactRepo defines the repository contract required by ContactService.
type ContactRepo interface {
	CreateContactMessage(ctx context.Context, db *gorm.DB, m *domain.ContactMessage) error
	ListContactMessages(ctx context.Context, db *gorm.DB, limit int) ([]domain.ContactMessage, error)
}

// ContactService stores contact messages and notifies the admin mailbox.
type ContactService struct {
	DB       *gorm.DB
	Repo     ContactRepo
	Notifier Notifier // optional
}

// NewContactService constructs a ContactService. n may be nil.
func NewContactService(db *gorm.DB, r ContactRepo, n Notifier) *ContactService {
	return &ContactService{DB: db, Repo: r, Notifier: n}
}

// Send validates and stores in. Every field is required.
func (s *ContactService) Send(ctx context.Context, in form.ContactSubmission) (*domain.ContactMessage, error) {
	m := &domain.ContactMessage{
		Name:    cleanText(in.Name),
		Email:   cleanText(in.Email),
		Phone:   cleanText(in.Phone),
		Subject: cleanText(in.Subject),
		Message: cleanFreeText(in.Message),
	}
	for _, f := range []struct{ name, val string }{
		{"name", m.Name},
		{"email", m.Email},
		{"phone", m.Phone},
		{"subject", m.Subject},
		{"message", m.Message},
	} {
		if f.val == "" {
			submissionsTotal.WithLabelValues("contact", resultInvalid).Inc()
			return nil, &MissingFieldError{Field: f.name}
		}
	}

	if err := s.Repo.CreateContactMessage(ctx, s.DB, m); err != nil {
		submissionsTotal.WithLabelValues("contact", resultError).Inc()
		return nil, err
	}
	submissionsTotal.WithLabelValues("contact", resultAccepted).Inc()

	if s.Notifier != nil {
		if err := s.Notifier.NotifyContact(ctx, m); err != nil {
			log.Ctx(ctx).Warn().Err(err).Uint("message_id", m.ID).Msg("contact notification failed")
		}
	}
	return m, nil
}

// Recent returns the latest limit messages for the admin dashboard.
func (s *ContactService) Recent(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	return s.Repo.ListContactMessages(ctx, s.DB, limit)
}

package services

import (
	"context"
	"fmt"

	"castpro_backend/internal/email"
	"castpro_backend/internal/logger"
	"castpro_backend/internal/models"
	"castpro_backend/internal/repositories"
	"castpro_backend/internal/services/dto"
	"castpro_backend/pkg/apperrors"
)

type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (*models.Contact, error)
	List(ctx context.Context, search, status string) ([]models.Contact, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

type ContactServiceImpl struct {
	contactRepo repositories.ContactRepository
	notifier    email.Notifier
}

func NewContactService(contactRepo repositories.ContactRepository, notifier email.Notifier) ContactService {
	return &ContactServiceImpl{
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

func (s *ContactServiceImpl) Submit(ctx context.Context, req dto.ContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, apperrors.PersistenceError(err, "contact", "Failed to save contact message")
	}

	logger.CtxInfo(ctx, "contact message received", "contact_id", contact.ID, "email", contact.Email)

	// Notification is best effort: the message is already persisted, so
	// a mail failure must not fail the submission.
	subject := fmt.Sprintf("New contact message from %s", contact.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", contact.Name, contact.Email, contact.Message)
	if err := s.notifier.Notify(subject, body); err != nil {
		logger.CtxWithError(ctx, "contact notification mail failed", err, "contact_id", contact.ID)
	}

	return contact, nil
}

func (s *ContactServiceImpl) List(ctx context.Context, search, status string) ([]models.Contact, error) {
	contacts, err := s.contactRepo.List(ctx, "created_at", true)
	if err != nil {
		return nil, apperrors.PersistenceError(err, "contact", "Failed to load contacts")
	}
	return FilterContacts(contacts, search, status), nil
}

func (s *ContactServiceImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	st := models.ContactStatus(status)
	if !st.Valid() {
		return apperrors.NewBadRequestError(fmt.Sprintf("Invalid status: %s", status))
	}

	if err := s.contactRepo.UpdateStatus(ctx, id, st); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("contact", "Contact not found")
		}
		return apperrors.PersistenceError(err, "contact", "Failed to update contact")
	}
	return nil
}

func (s *ContactServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.contactRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("contact", "Contact not found")
		}
		return apperrors.PersistenceError(err, "contact", "Failed to delete contact")
	}
	logger.CtxInfo(ctx, "contact deleted", "contact_id", id)
	return nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/repository"
	"strata-be-svc/pkg/logger"
)

// ContactSuccessMessage is shown after a contact message is stored
const ContactSuccessMessage = "Terima kasih! Kami telah menerima mesej anda. Kami akan menghubungi anda dalam masa 48 jam."

// ContactInput is a message sent through the contact form
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactService defines the contact form operations
type ContactService interface {
	Submit(ctx context.Context, input ContactInput) (*models.ContactMessage, error)
	List(ctx context.Context, page, limit int) ([]models.ContactMessage, int64, error)
}

// contactService implements ContactService
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *logger.Logger
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repository.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func validateContact(input ContactInput) error {
	switch {
	case isEmpty(input.Name):
		return errcode.New(errcode.ContactMissingName)
	case isEmpty(input.Email):
		return errcode.New(errcode.ContactMissingEmail)
	case !isValidEmail(strings.TrimSpace(input.Email)):
		return errcode.New(errcode.ContactInvalidEmail)
	case isEmpty(input.Subject):
		return errcode.New(errcode.ContactMissingSubject)
	case isEmpty(input.Message):
		return errcode.New(errcode.ContactMissingMessage)
	}
	return nil
}

// Submit validates and stores a contact message
func (s *contactService) Submit(ctx context.Context, input ContactInput) (*models.ContactMessage, error) {
	if err := validateContact(input); err != nil {
		return nil, err
	}

	message := &models.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   normalizeEmail(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
	}
	if err := s.contactRepo.Create(ctx, message); err != nil {
		s.logger.WithError(err).Error("Failed to store contact message")
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"contact_id": message.ID,
		"subject":    message.Subject,
	}).Info("Contact message received")

	return message, nil
}

// List returns contact messages, newest first
func (s *contactService) List(ctx context.Context, page, limit int) ([]models.ContactMessage, int64, error) {
	messages, total, err := s.contactRepo.List(ctx, page, limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list contact messages")
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, total, nil
}

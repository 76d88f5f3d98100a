package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leadflowhq/leadflow/ent"
	"github.com/leadflowhq/leadflow/ent/contact"
	"github.com/leadflowhq/leadflow/pkg/models"
)

// ContactService manages contacts and their purchase aggregates
type ContactService struct {
	client *ent.Client
}

// NewContactService creates a new ContactService
func NewContactService(client *ent.Client) *ContactService {
	return &ContactService{client: client}
}

// GetOrCreateContact returns the contact for a normalized phone number,
// creating it on first inbound. Creation races resolve by re-reading on
// the unique-phone constraint.
func (s *ContactService) GetOrCreateContact(httpCtx context.Context, phone, name string) (*ent.Contact, error) {
	if phone == "" {
		return nil, NewValidationError("phone", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	existing, err := s.client.Contact.Query().
		Where(contact.PhoneEQ(phone)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query contact: %w", err)
	}

	builder := s.client.Contact.Create().
		SetID(uuid.New().String()).
		SetPhone(phone)
	if name != "" {
		builder.SetName(name)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a creation race; the winner's row is what we want.
			return s.client.Contact.Query().Where(contact.PhoneEQ(phone)).Only(ctx)
		}
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return created, nil
}

// GetContact retrieves a contact by ID
func (s *ContactService) GetContact(ctx context.Context, contactID string) (*ent.Contact, error) {
	c, err := s.client.Contact.Get(ctx, contactID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return c, nil
}

// FindByEmailOrPhone correlates a billing buyer to a contact. Email wins
// when both are present and resolve to different contacts.
func (s *ContactService) FindByEmailOrPhone(ctx context.Context, email, phone string) (*ent.Contact, error) {
	if email != "" {
		c, err := s.client.Contact.Query().
			Where(contact.EmailEQ(email)).
			Order(ent.Asc(contact.FieldCreatedAt)).
			First(ctx)
		if err == nil {
			return c, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query contact by email: %w", err)
		}
	}
	if phone != "" {
		c, err := s.client.Contact.Query().
			Where(contact.PhoneEQ(phone)).
			Only(ctx)
		if err == nil {
			return c, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query contact by phone: %w", err)
		}
	}
	return nil, ErrNotFound
}

// LearnIdentity fills in contact fields learned later (billing email,
// buyer name). Existing values are never overwritten.
func (s *ContactService) LearnIdentity(ctx context.Context, contactID, email, name string) (*ent.Contact, error) {
	c, err := s.GetContact(ctx, contactID)
	if err != nil {
		return nil, err
	}

	update := c.Update()
	changed := false
	if email != "" && (c.Email == nil || *c.Email == "") {
		update.SetEmail(email)
		changed = true
	}
	if name != "" && (c.Name == nil || *c.Name == "") {
		update.SetName(name)
		changed = true
	}
	if !changed {
		return c, nil
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact identity: %w", err)
	}
	return updated, nil
}

// RecordPurchase bumps a contact's purchase aggregates after an approved
// sale.
func (s *ContactService) RecordPurchase(ctx context.Context, contactID string, value float64) (*ent.Contact, error) {
	updated, err := s.client.Contact.UpdateOneID(contactID).
		AddOrderCount(1).
		AddTotalSpent(value).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}
	return updated, nil
}

// ListContacts retrieves contacts with filtering and pagination
func (s *ContactService) ListContacts(ctx context.Context, filters models.ContactFilters) (*models.ContactListResponse, error) {
	query := s.client.Contact.Query()
	if filters.Search != "" {
		query = query.Where(contact.Or(
			contact.PhoneContains(filters.Search),
			contact.NameContainsFold(filters.Search),
			contact.EmailContainsFold(filters.Search),
		))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	contacts, err := query.
		Order(ent.Desc(contact.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return &models.ContactListResponse{
		Contacts:   contacts,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

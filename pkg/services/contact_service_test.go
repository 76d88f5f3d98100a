package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateContact(t *testing.T) {
	client := newEntClient(t)
	svc := NewContactService(client)
	ctx := context.Background()

	created, err := svc.GetOrCreateContact(ctx, "+15551112222", "Maria Silva")
	require.NoError(t, err)
	assert.Equal(t, "+15551112222", created.Phone)
	require.NotNil(t, created.Name)
	assert.Equal(t, "Maria Silva", *created.Name)

	// Second call returns the same row, even with a different profile name.
	again, err := svc.GetOrCreateContact(ctx, "+15551112222", "M. Silva")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Maria Silva", *again.Name)

	_, err = svc.GetOrCreateContact(ctx, "", "nobody")
	assert.True(t, IsValidationError(err))
}

func TestLearnIdentity_NeverOverwrites(t *testing.T) {
	client := newEntClient(t)
	svc := NewContactService(client)
	ctx := context.Background()

	contact, err := svc.GetOrCreateContact(ctx, "+15551112222", "Maria Silva")
	require.NoError(t, err)

	updated, err := svc.LearnIdentity(ctx, contact.ID, "maria@example.com", "Other Name")
	require.NoError(t, err)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "maria@example.com", *updated.Email)
	// Name was already known; the billing name does not replace it.
	assert.Equal(t, "Maria Silva", *updated.Name)

	// A later event with a different email is ignored too.
	updated, err = svc.LearnIdentity(ctx, contact.ID, "other@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", *updated.Email)
}

func TestFindByEmailOrPhone_EmailWins(t *testing.T) {
	client := newEntClient(t)
	svc := NewContactService(client)
	ctx := context.Background()

	byEmail, err := svc.GetOrCreateContact(ctx, "+15551110001", "Maria Silva")
	require.NoError(t, err)
	_, err = svc.LearnIdentity(ctx, byEmail.ID, "maria@example.com", "")
	require.NoError(t, err)
	byPhone, err := svc.GetOrCreateContact(ctx, "+15551110002", "Joana Reis")
	require.NoError(t, err)

	found, err := svc.FindByEmailOrPhone(ctx, "maria@example.com", "+15551110002")
	require.NoError(t, err)
	assert.Equal(t, byEmail.ID, found.ID)

	found, err = svc.FindByEmailOrPhone(ctx, "", "+15551110002")
	require.NoError(t, err)
	assert.Equal(t, byPhone.ID, found.ID)

	_, err = svc.FindByEmailOrPhone(ctx, "unknown@example.com", "+15559990000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordPurchase_Aggregates(t *testing.T) {
	client := newEntClient(t)
	svc := NewContactService(client)
	ctx := context.Background()

	contact, err := svc.GetOrCreateContact(ctx, "+15551112222", "Maria Silva")
	require.NoError(t, err)

	_, err = svc.RecordPurchase(ctx, contact.ID, 97.5)
	require.NoError(t, err)
	updated, err := svc.RecordPurchase(ctx, contact.ID, 197)
	require.NoError(t, err)

	assert.Equal(t, 2, updated.OrderCount)
	assert.InDelta(t, 294.5, updated.TotalSpent, 0.001)
}

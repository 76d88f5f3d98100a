package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/leadflowhq/leadflow/ent"
	testdb "github.com/leadflowhq/leadflow/test/database"
)

// newFixtureThread creates a contact and its whatsapp thread for tests
// that need an existing conversation.
func newFixtureThread(t *testing.T, client *ent.Client, phone string) *ent.Thread {
	t.Helper()
	ctx := context.Background()

	contact, err := client.Contact.Create().
		SetID(uuid.New().String()).
		SetPhone(phone).
		SetName("Maria Silva").
		Save(ctx)
	require.NoError(t, err)

	thread, err := client.Thread.Create().
		SetID(uuid.New().String()).
		SetContactID(contact.ID).
		SetChannel("whatsapp").
		Save(ctx)
	require.NoError(t, err)
	return thread
}

func newEntClient(t *testing.T) *ent.Client {
	t.Helper()
	return testdb.NewTestClient(t).Client
}

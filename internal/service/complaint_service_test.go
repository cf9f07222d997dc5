package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThellaPrasanthi/complain-system/internal/auth"
	"github.com/ThellaPrasanthi/complain-system/internal/domain"
	"github.com/ThellaPrasanthi/complain-system/internal/events"
	"github.com/ThellaPrasanthi/complain-system/internal/repository"
	apperrors "github.com/ThellaPrasanthi/complain-system/pkg/util"
)

func adminClaims() *auth.Claims {
	return &auth.Claims{Username: "admin", Role: domain.RoleAdmin}
}

func userClaims(username string) *auth.Claims {
	return &auth.Claims{Username: username, Role: domain.RoleUser}
}

func sampleInput(title string) ComplaintCreateInput {
	return ComplaintCreateInput{
		Name:        "Jordan Doe",
		Email:       "jordan@example.com",
		Phone:       "555-0101",
		Category:    "billing",
		Title:       title,
		Description: "charged twice for the same order",
	}
}

func newTestComplaintService() *ComplaintService {
	return NewComplaintService(repository.NewMemoryComplaintStore(), events.NewInMemoryDispatcher())
}

func TestCreateAssignsSequentialIDsAndPendingStatus(t *testing.T) {
	svc := newTestComplaintService()
	ctx := context.Background()

	first, err := svc.Create(ctx, userClaims("user"), sampleInput("first"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, userClaims("user"), sampleInput("second"))
	require.NoError(t, err)

	assert.Equal(t, "CMP001", first.ExternalID())
	assert.Equal(t, "CMP002", second.ExternalID())
	assert.Equal(t, domain.StatusPending, first.Status)
	assert.Equal(t, domain.StatusPending, second.Status)
	assert.Equal(t, "user", first.Owner)
}

func TestCreateThenListRoundTripsFieldsVerbatim(t *testing.T) {
	svc := newTestComplaintService()
	ctx := context.Background()

	input := ComplaintCreateInput{
		Name:        "  spaced name  ",
		Email:       "a@b.c",
		Phone:       "000",
		Category:    "noise",
		Title:       "loud construction",
		Description: "drilling at 6am",
	}
	_, err := svc.Create(ctx, userClaims("user"), input)
	require.NoError(t, err)

	listed, err := svc.List(ctx, adminClaims())
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got := listed[0]
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Email, got.Email)
	assert.Equal(t, input.Phone, got.Phone)
	assert.Equal(t, input.Category, got.Category)
	assert.Equal(t, input.Title, got.Title)
	assert.Equal(t, input.Description, got.Description)
}

func TestListScopedByOwnerForNonAdmins(t *testing.T) {
	svc := newTestComplaintService()
	ctx := context.Background()

	_, err := svc.Create(ctx, userClaims("alice"), sampleInput("alice's complaint"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, userClaims("bob"), sampleInput("bob's complaint"))
	require.NoError(t, err)

	all, err := svc.List(ctx, adminClaims())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.List(ctx, userClaims("alice"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "alice", mine[0].Owner)
	assert.Equal(t, "alice's complaint", mine[0].Title)
}

func TestUpdateStatusOverwritesInPlace(t *testing.T) {
	svc := newTestComplaintService()
	ctx := context.Background()

	created, err := svc.Create(ctx, userClaims("user"), sampleInput("pending complaint"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, adminClaims(), created.ExternalID(), "Resolved"))

	listed, err := svc.List(ctx, adminClaims())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Resolved", listed[0].Status)
}

func TestUpdateStatusMissingIDIsSilentNoOp(t *testing.T) {
	svc := newTestComplaintService()
	err := svc.UpdateStatus(context.Background(), adminClaims(), "CMP999", "Resolved")
	assert.NoError(t, err)
}

func TestUpdateStatusUnparseableID(t *testing.T) {
	svc := newTestComplaintService()
	err := svc.UpdateStatus(context.Background(), adminClaims(), "CMPxyz", "Resolved")
	require.Error(t, err)
	assert.Equal(t, "MALFORMED_REQUEST", apperrors.ToDomainError(err).Code)
}

func TestDeleteRemovesRecordPermanently(t *testing.T) {
	svc := newTestComplaintService()
	ctx := context.Background()

	created, err := svc.Create(ctx, userClaims("user"), sampleInput("to delete"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, adminClaims(), created.ExternalID()))

	listed, err := svc.List(ctx, adminClaims())
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestDeleteMissingIDIsSilentNoOp(t *testing.T) {
	svc := newTestComplaintService()
	err := svc.Delete(context.Background(), adminClaims(), "CMP999")
	assert.NoError(t, err)
}

func TestDeleteUnparseableID(t *testing.T) {
	svc := newTestComplaintService()
	err := svc.Delete(context.Background(), adminClaims(), "garbage")
	require.Error(t, err)
	assert.Equal(t, "MALFORMED_REQUEST", apperrors.ToDomainError(err).Code)
}

func TestStatusChangePublishesEventOnlyWhenRowAffected(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var received []events.Event
	dispatcher.Subscribe(events.EventComplaintStatusChanged, func(_ context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	})

	svc := NewComplaintService(repository.NewMemoryComplaintStore(), dispatcher)
	ctx := context.Background()

	created, err := svc.Create(ctx, userClaims("user"), sampleInput("event check"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, adminClaims(), "CMP999", "Resolved"))
	assert.Empty(t, received, "no-op update must not publish")

	require.NoError(t, svc.UpdateStatus(ctx, adminClaims(), created.ExternalID(), "Resolved"))
	require.Len(t, received, 1)
	assert.Equal(t, created.ExternalID(), received[0].ComplaintID)
}

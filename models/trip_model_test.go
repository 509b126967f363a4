package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triplogue/triplogue-backend/db"
	apperrors "github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/store/memory"
	"github.com/triplogue/triplogue-backend/types"
)

type recordingEmailSender struct {
	sent []string // recipient addresses
	err  error
}

func (r *recordingEmailSender) SendInvitation(_ context.Context, toEmail string, _ *types.Trip, _ string) error {
	r.sent = append(r.sent, toEmail)
	return r.err
}

func newTripFixture(t *testing.T) (*TripModel, *db.UserDB, *recordingEmailSender) {
	t.Helper()

	docStore := memory.NewDocumentStore()
	tripDB := db.NewTripDB(docStore)
	userDB := db.NewUserDB(docStore)
	email := &recordingEmailSender{}
	return NewTripModel(tripDB, userDB, email), userDB, email
}

func validTrip(creator string) *types.Trip {
	return &types.Trip{
		Destination: "Reykjavik",
		Country:     "Iceland",
		Year:        2024,
		StartDate:   "2024-09-01",
		EndDate:     "2024-09-08",
		CreatedBy:   creator,
	}
}

func TestCreateTripSetsOwnership(t *testing.T) {
	model, _, _ := newTripFixture(t)

	trip := validTrip("alice")
	require.NoError(t, model.CreateTrip(context.Background(), trip))

	assert.NotZero(t, trip.ID)
	assert.Equal(t, "alice", trip.OwnerID)
	assert.Equal(t, []string{"alice"}, trip.MemberIDs)
	assert.Equal(t, types.TripStatusUpcoming, trip.Status)
}

func TestCreateTripValidation(t *testing.T) {
	model, _, _ := newTripFixture(t)

	cases := []*types.Trip{
		{StartDate: "2024-09-01", EndDate: "2024-09-08", CreatedBy: "alice"},
		{Destination: "X", StartDate: "bad", EndDate: "2024-09-08", CreatedBy: "alice"},
		{Destination: "X", StartDate: "2024-09-08", EndDate: "2024-09-01", CreatedBy: "alice"},
	}
	for _, trip := range cases {
		err := model.CreateTrip(context.Background(), trip)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	}
}

func TestGetTripByIDEnforcesMembership(t *testing.T) {
	model, _, _ := newTripFixture(t)
	ctx := context.Background()

	trip := validTrip("alice")
	require.NoError(t, model.CreateTrip(ctx, trip))

	got, err := model.GetTripByID(ctx, trip.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)

	_, err = model.GetTripByID(ctx, trip.ID, "mallory")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.TripAccessError, appErr.Type)
}

func TestGetTripByIDUnknownTrip(t *testing.T) {
	model, _, _ := newTripFixture(t)

	_, err := model.GetTripByID(context.Background(), 12345, "alice")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.TripNotFound, appErr.Type)
}

func TestListUserTripsNewestFirst(t *testing.T) {
	model, _, _ := newTripFixture(t)
	ctx := context.Background()

	first := validTrip("alice")
	require.NoError(t, model.CreateTrip(ctx, first))
	second := validTrip("alice")
	require.NoError(t, model.CreateTrip(ctx, second))
	other := validTrip("bob")
	require.NoError(t, model.CreateTrip(ctx, other))

	trips, err := model.ListUserTrips(ctx, "alice")
	require.NoError(t, err)

	require.Len(t, trips, 2)
	assert.Equal(t, second.ID, trips[0].ID)
	assert.Equal(t, first.ID, trips[1].ID)
}

func TestUpdateTripMergesFields(t *testing.T) {
	model, _, _ := newTripFixture(t)
	ctx := context.Background()

	trip := validTrip("alice")
	require.NoError(t, model.CreateTrip(ctx, trip))

	updated, err := model.UpdateTrip(ctx, trip.ID, "alice", &types.TripUpdate{
		Destination: "Akureyri",
		Status:      types.TripStatusOngoing,
	})
	require.NoError(t, err)

	assert.Equal(t, "Akureyri", updated.Destination)
	assert.Equal(t, types.TripStatusOngoing, updated.Status)
	// Untouched fields survive.
	assert.Equal(t, "Iceland", updated.Country)
	assert.Equal(t, "2024-09-01", updated.StartDate)
}

func TestDeleteTripOwnerOnly(t *testing.T) {
	model, _, _ := newTripFixture(t)
	ctx := context.Background()

	trip := validTrip("alice")
	require.NoError(t, model.CreateTrip(ctx, trip))
	_, err := model.InviteMember(ctx, trip.ID, "alice", "bob")
	require.NoError(t, err)

	err = model.DeleteTrip(ctx, trip.ID, "bob")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ForbiddenError, appErr.Type)

	require.NoError(t, model.DeleteTrip(ctx, trip.ID, "alice"))

	_, err = model.GetTripByID(ctx, trip.ID, "alice")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.TripNotFound, appErr.Type)
}

func TestInviteMemberGrantsAccess(t *testing.T) {
	model, _, _ := newTripFixture(t)
	ctx := context.Background()

	trip := validTrip("alice")
	require.NoError(t, model.CreateTrip(ctx, trip))

	updated, err := model.InviteMember(ctx, trip.ID, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, updated.MemberIDs)

	// Re-inviting is a no-op, not a duplicate.
	again, err := model.InviteMember(ctx, trip.ID, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, again.MemberIDs)

	got, err := model.GetTripByID(ctx, trip.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
}

func TestInviteMemberOnlyMembersCanInvite(t *testing.T) {
	model, _, _ := newTripFixture(t)
	ctx := context.Background()

	trip := validTrip("alice")
	require.NoError(t, model.CreateTrip(ctx, trip))

	_, err := model.InviteMember(ctx, trip.ID, "mallory", "eve")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.TripAccessError, appErr.Type)
}

func TestInviteMemberSendsEmailWhenAddressOnFile(t *testing.T) {
	model, userDB, email := newTripFixture(t)
	ctx := context.Background()

	require.NoError(t, userDB.SaveProfile(ctx, &types.UserProfile{
		ID:    "bob",
		Email: "bob@example.com",
	}))

	trip := validTrip("alice")
	require.NoError(t, model.CreateTrip(ctx, trip))

	_, err := model.InviteMember(ctx, trip.ID, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob@example.com"}, email.sent)
}

func TestInviteMemberSkipsEmailWithoutAddress(t *testing.T) {
	model, _, email := newTripFixture(t)
	ctx := context.Background()

	trip := validTrip("alice")
	require.NoError(t, model.CreateTrip(ctx, trip))

	_, err := model.InviteMember(ctx, trip.ID, "alice", "bob")
	require.NoError(t, err)
	assert.Empty(t, email.sent)
}

package models

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/triplogue/triplogue-backend/db"
	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/logger"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

// InvitationEmailSender notifies an invited user. Sending is best-effort;
// an invite never fails because the email could not go out.
type InvitationEmailSender interface {
	SendInvitation(ctx context.Context, toEmail string, trip *types.Trip, inviterName string) error
}

type TripModel struct {
	tripDB *db.TripDB
	userDB *db.UserDB
	email  InvitationEmailSender // may be nil when email is not configured
}

func NewTripModel(tripDB *db.TripDB, userDB *db.UserDB, email InvitationEmailSender) *TripModel {
	return &TripModel{
		tripDB: tripDB,
		userDB: userDB,
		email:  email,
	}
}

func (tm *TripModel) CreateTrip(ctx context.Context, trip *types.Trip) error {
	if err := validateTrip(trip); err != nil {
		return err
	}

	if err := tm.tripDB.CreateTrip(ctx, trip); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

// GetTripByID loads a trip and enforces that the requesting user is a
// member.
func (tm *TripModel) GetTripByID(ctx context.Context, id int64, userID string) (*types.Trip, error) {
	trip, err := tm.tripDB.GetTrip(ctx, id)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NewTripNotFound(fmt.Sprintf("%d", id))
		}
		return nil, errors.NewDatabaseError(err)
	}
	if !trip.IsMember(userID) {
		return nil, errors.TripAccessDenied(userID, fmt.Sprintf("%d", id))
	}
	return trip, nil
}

func (tm *TripModel) ListUserTrips(ctx context.Context, userID string) ([]types.Trip, error) {
	trips, err := tm.tripDB.ListTripsForUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return trips, nil
}

func (tm *TripModel) UpdateTrip(ctx context.Context, id int64, userID string, update *types.TripUpdate) (*types.Trip, error) {
	if _, err := tm.GetTripByID(ctx, id, userID); err != nil {
		return nil, err
	}
	if err := validateTripUpdate(update); err != nil {
		return nil, err
	}

	trip, err := tm.tripDB.UpdateTrip(ctx, id, update)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return trip, nil
}

// DeleteTrip removes the trip document outright. Only the owner may delete.
// The removal itself is best-effort, matching every other delete.
func (tm *TripModel) DeleteTrip(ctx context.Context, id int64, userID string) error {
	trip, err := tm.GetTripByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if trip.OwnerID != userID {
		return errors.Forbidden("Only the trip owner can delete a trip", "")
	}

	tm.tripDB.DeleteTrip(ctx, id)
	return nil
}

// InviteMember appends the invitee to the member list (deduplicated) and
// sends a best-effort invitation email.
func (tm *TripModel) InviteMember(ctx context.Context, tripID int64, inviterID, inviteeID string) (*types.Trip, error) {
	if inviteeID == "" {
		return nil, errors.ValidationFailed("Invitee is required", "")
	}
	if _, err := tm.GetTripByID(ctx, tripID, inviterID); err != nil {
		return nil, err
	}

	trip, err := tm.tripDB.AddMember(ctx, tripID, inviteeID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	tm.sendInvitationEmail(ctx, trip, inviterID, inviteeID)
	return trip, nil
}

func (tm *TripModel) sendInvitationEmail(ctx context.Context, trip *types.Trip, inviterID, inviteeID string) {
	if tm.email == nil {
		return
	}
	log := logger.GetLogger()

	invitee, err := tm.userDB.GetProfile(ctx, inviteeID)
	if err != nil || invitee.Email == "" {
		log.Infow("Skipping invitation email, no address on file", "invitee", inviteeID)
		return
	}

	inviterName := "Unknown"
	if inviter, err := tm.userDB.GetProfile(ctx, inviterID); err == nil {
		inviterName = inviter.Name()
	}

	if err := tm.email.SendInvitation(ctx, invitee.Email, trip, inviterName); err != nil {
		log.Warnw("Failed to send invitation email", "trip", trip.ID, "invitee", inviteeID, "error", err)
	}
}

func validateTrip(trip *types.Trip) error {
	if trip.Destination == "" {
		return errors.ValidationFailed("Destination is required", "")
	}
	if _, err := dateRange(trip.StartDate, trip.EndDate); err != nil {
		return err
	}
	if trip.Status != "" && !trip.Status.IsValid() {
		return errors.ValidationFailed("Invalid trip status", string(trip.Status))
	}
	return nil
}

func validateTripUpdate(update *types.TripUpdate) error {
	if update.Status != "" && !update.Status.IsValid() {
		return errors.ValidationFailed("Invalid trip status", string(update.Status))
	}
	for _, d := range []string{update.StartDate, update.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return errors.ValidationFailed("Invalid date", d)
		}
	}
	return nil
}

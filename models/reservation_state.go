package models

import (
	"errors"

	"pms/constants"
)

// ReservationState defines the transitions allowed from one reservation status.
type ReservationState interface {
	CheckIn(r *Reservation) error
	CheckOut(r *Reservation) error
	Cancel(r *Reservation) error
	MarkNoShow(r *Reservation) error
}

// ConfirmedState: guest has a booking but has not arrived yet.
type ConfirmedState struct{}

func (s *ConfirmedState) CheckIn(r *Reservation) error {
	r.Status = constants.ReservationStatusCheckedIn
	return nil
}

func (s *ConfirmedState) CheckOut(r *Reservation) error {
	return errors.New("cannot check out a reservation that was never checked in")
}

func (s *ConfirmedState) Cancel(r *Reservation) error {
	r.Status = constants.ReservationStatusCancelled
	return nil
}

func (s *ConfirmedState) MarkNoShow(r *Reservation) error {
	r.Status = constants.ReservationStatusNoShow
	return nil
}

// CheckedInState: guest is in the room.
type CheckedInState struct{}

func (s *CheckedInState) CheckIn(r *Reservation) error {
	return errors.New("reservation already checked in")
}

func (s *CheckedInState) CheckOut(r *Reservation) error {
	r.Status = constants.ReservationStatusCheckedOut
	return nil
}

func (s *CheckedInState) Cancel(r *Reservation) error {
	return errors.New("cannot cancel a checked-in reservation")
}

func (s *CheckedInState) MarkNoShow(r *Reservation) error {
	return errors.New("cannot mark a checked-in reservation as no-show")
}

// ClosedState covers checked_out, cancelled and no_show: no transitions left.
type ClosedState struct{}

func (s *ClosedState) CheckIn(r *Reservation) error {
	return errors.New("reservation is closed")
}

func (s *ClosedState) CheckOut(r *Reservation) error {
	return errors.New("reservation is closed")
}

func (s *ClosedState) Cancel(r *Reservation) error {
	return errors.New("reservation is closed")
}

func (s *ClosedState) MarkNoShow(r *Reservation) error {
	return errors.New("reservation is closed")
}

// GetReservationState returns the state matching the reservation status.
func GetReservationState(status string) ReservationState {
	switch status {
	case constants.ReservationStatusConfirmed:
		return &ConfirmedState{}
	case constants.ReservationStatusCheckedIn:
		return &CheckedInState{}
	default:
		return &ClosedState{}
	}
}

package models

import "errors"

// BookingState định nghĩa interface cho các trạng thái đặt phòng
type BookingState interface {
	Confirm(booking *Booking) error
	CheckIn(booking *Booking) error
	CheckOut(booking *Booking) error
	Cancel(booking *Booking) error
}

// PendingBookingState trạng thái chờ xác nhận
type PendingBookingState struct{}

func (s *PendingBookingState) Confirm(booking *Booking) error {
	booking.Status = BookingStatusConfirmed
	return nil
}

func (s *PendingBookingState) CheckIn(booking *Booking) error {
	return errors.New("cannot check in pending booking")
}

func (s *PendingBookingState) CheckOut(booking *Booking) error {
	return errors.New("cannot check out pending booking")
}

func (s *PendingBookingState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

// ConfirmedBookingState trạng thái đã xác nhận
type ConfirmedBookingState struct{}

func (s *ConfirmedBookingState) Confirm(booking *Booking) error {
	return errors.New("booking already confirmed")
}

func (s *ConfirmedBookingState) CheckIn(booking *Booking) error {
	booking.Status = BookingStatusCheckedIn
	return nil
}

func (s *ConfirmedBookingState) CheckOut(booking *Booking) error {
	return errors.New("cannot check out booking that is not checked in")
}

func (s *ConfirmedBookingState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

// CheckedInBookingState trạng thái khách đang ở
type CheckedInBookingState struct{}

func (s *CheckedInBookingState) Confirm(booking *Booking) error {
	return errors.New("booking already checked in")
}

func (s *CheckedInBookingState) CheckIn(booking *Booking) error {
	return errors.New("booking already checked in")
}

func (s *CheckedInBookingState) CheckOut(booking *Booking) error {
	booking.Status = BookingStatusCheckedOut
	return nil
}

func (s *CheckedInBookingState) Cancel(booking *Booking) error {
	return errors.New("cannot cancel checked in booking")
}

// CheckedOutBookingState trạng thái đã trả phòng (kết thúc)
type CheckedOutBookingState struct{}

func (s *CheckedOutBookingState) Confirm(booking *Booking) error {
	return errors.New("booking already checked out")
}

func (s *CheckedOutBookingState) CheckIn(booking *Booking) error {
	return errors.New("cannot check in checked out booking")
}

func (s *CheckedOutBookingState) CheckOut(booking *Booking) error {
	return errors.New("booking already checked out")
}

func (s *CheckedOutBookingState) Cancel(booking *Booking) error {
	return errors.New("cannot cancel checked out booking")
}

// CancelledBookingState trạng thái đã hủy (kết thúc)
type CancelledBookingState struct{}

func (s *CancelledBookingState) Confirm(booking *Booking) error {
	return errors.New("cannot confirm cancelled booking")
}

func (s *CancelledBookingState) CheckIn(booking *Booking) error {
	return errors.New("cannot check in cancelled booking")
}

func (s *CancelledBookingState) CheckOut(booking *Booking) error {
	return errors.New("cannot check out cancelled booking")
}

func (s *CancelledBookingState) Cancel(booking *Booking) error {
	return errors.New("booking already cancelled")
}

// GetBookingState trả về state tương ứng với trạng thái đặt phòng
func GetBookingState(status string) BookingState {
	switch status {
	case BookingStatusPending:
		return &PendingBookingState{}
	case BookingStatusConfirmed:
		return &ConfirmedBookingState{}
	case BookingStatusCheckedIn:
		return &CheckedInBookingState{}
	case BookingStatusCheckedOut:
		return &CheckedOutBookingState{}
	case BookingStatusCancelled:
		return &CancelledBookingState{}
	default:
		return &PendingBookingState{}
	}
}

package models

import "testing"

func TestBookingStateTransitions(t *testing.T) {
	type action func(BookingState, *Booking) error
	confirm := func(s BookingState, b *Booking) error { return s.Confirm(b) }
	checkIn := func(s BookingState, b *Booking) error { return s.CheckIn(b) }
	checkOut := func(s BookingState, b *Booking) error { return s.CheckOut(b) }
	cancel := func(s BookingState, b *Booking) error { return s.Cancel(b) }

	tests := []struct {
		name       string
		from       string
		act        action
		wantErr    bool
		wantStatus string
	}{
		{"pending confirm", BookingStatusPending, confirm, false, BookingStatusConfirmed},
		{"pending cancel", BookingStatusPending, cancel, false, BookingStatusCancelled},
		{"pending check in", BookingStatusPending, checkIn, true, BookingStatusPending},
		{"pending check out", BookingStatusPending, checkOut, true, BookingStatusPending},

		{"confirmed check in", BookingStatusConfirmed, checkIn, false, BookingStatusCheckedIn},
		{"confirmed cancel", BookingStatusConfirmed, cancel, false, BookingStatusCancelled},
		{"confirmed confirm again", BookingStatusConfirmed, confirm, true, BookingStatusConfirmed},
		{"confirmed check out", BookingStatusConfirmed, checkOut, true, BookingStatusConfirmed},

		{"checked in check out", BookingStatusCheckedIn, checkOut, false, BookingStatusCheckedOut},
		{"checked in cancel", BookingStatusCheckedIn, cancel, true, BookingStatusCheckedIn},
		{"checked in check in again", BookingStatusCheckedIn, checkIn, true, BookingStatusCheckedIn},

		{"checked out confirm", BookingStatusCheckedOut, confirm, true, BookingStatusCheckedOut},
		{"checked out check in", BookingStatusCheckedOut, checkIn, true, BookingStatusCheckedOut},
		{"checked out cancel", BookingStatusCheckedOut, cancel, true, BookingStatusCheckedOut},

		{"cancelled confirm", BookingStatusCancelled, confirm, true, BookingStatusCancelled},
		{"cancelled check in", BookingStatusCancelled, checkIn, true, BookingStatusCancelled},
		{"cancelled cancel again", BookingStatusCancelled, cancel, true, BookingStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &Booking{Status: tt.from}
			state := GetBookingState(tt.from)

			err := tt.act(state, booking)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if booking.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", booking.Status, tt.wantStatus)
			}
		})
	}
}

package models

import (
	"testing"
	"time"
)

func TestPaymentStateTransitions(t *testing.T) {
	now := time.Now()

	t.Run("pending sang completed gán ngày thanh toán", func(t *testing.T) {
		payment := &Payment{PaymentStatus: PaymentStatusPending}
		state := GetPaymentState(payment.PaymentStatus)

		if err := state.Complete(payment, now); err != nil {
			t.Fatalf("Complete() lỗi: %v", err)
		}
		if payment.PaymentStatus != PaymentStatusCompleted {
			t.Errorf("status = %s, want %s", payment.PaymentStatus, PaymentStatusCompleted)
		}
		if payment.PaymentDate == nil || !payment.PaymentDate.Equal(now) {
			t.Errorf("paymentDate = %v, want %v", payment.PaymentDate, now)
		}
	})

	t.Run("pending sang failed", func(t *testing.T) {
		payment := &Payment{PaymentStatus: PaymentStatusPending}
		if err := GetPaymentState(payment.PaymentStatus).Fail(payment); err != nil {
			t.Fatalf("Fail() lỗi: %v", err)
		}
		if payment.PaymentStatus != PaymentStatusFailed {
			t.Errorf("status = %s, want %s", payment.PaymentStatus, PaymentStatusFailed)
		}
	})

	t.Run("pending không được refund", func(t *testing.T) {
		payment := &Payment{PaymentStatus: PaymentStatusPending}
		if err := GetPaymentState(payment.PaymentStatus).Refund(payment); err == nil {
			t.Fatal("Refund() trên pending phải lỗi")
		}
	})

	t.Run("completed sang refunded", func(t *testing.T) {
		payment := &Payment{PaymentStatus: PaymentStatusCompleted}
		if err := GetPaymentState(payment.PaymentStatus).Refund(payment); err != nil {
			t.Fatalf("Refund() lỗi: %v", err)
		}
		if payment.PaymentStatus != PaymentStatusRefunded {
			t.Errorf("status = %s, want %s", payment.PaymentStatus, PaymentStatusRefunded)
		}
	})

	t.Run("completed không được complete lại", func(t *testing.T) {
		payment := &Payment{PaymentStatus: PaymentStatusCompleted}
		if err := GetPaymentState(payment.PaymentStatus).Complete(payment, now); err == nil {
			t.Fatal("Complete() trên completed phải lỗi")
		}
	})

	t.Run("failed và refunded là trạng thái cuối", func(t *testing.T) {
		for _, status := range []string{PaymentStatusFailed, PaymentStatusRefunded} {
			payment := &Payment{PaymentStatus: status}
			state := GetPaymentState(status)
			if err := state.Complete(payment, now); err == nil {
				t.Errorf("Complete() trên %s phải lỗi", status)
			}
			if err := state.Fail(payment); err == nil {
				t.Errorf("Fail() trên %s phải lỗi", status)
			}
		}
	})
}

package models

import (
	"errors"
	"time"
)

// PaymentState định nghĩa interface cho các trạng thái thanh toán
type PaymentState interface {
	Complete(payment *Payment, paymentDate time.Time) error
	Fail(payment *Payment) error
	Refund(payment *Payment) error
}

// PendingPaymentState trạng thái chờ thanh toán
type PendingPaymentState struct{}

func (s *PendingPaymentState) Complete(payment *Payment, paymentDate time.Time) error {
	payment.PaymentStatus = PaymentStatusCompleted
	payment.PaymentDate = &paymentDate
	return nil
}

func (s *PendingPaymentState) Fail(payment *Payment) error {
	payment.PaymentStatus = PaymentStatusFailed
	return nil
}

func (s *PendingPaymentState) Refund(payment *Payment) error {
	return errors.New("only completed payment can be refunded")
}

// CompletedPaymentState trạng thái đã thanh toán
type CompletedPaymentState struct{}

func (s *CompletedPaymentState) Complete(payment *Payment, paymentDate time.Time) error {
	return errors.New("payment already completed")
}

func (s *CompletedPaymentState) Fail(payment *Payment) error {
	return errors.New("cannot fail completed payment")
}

func (s *CompletedPaymentState) Refund(payment *Payment) error {
	payment.PaymentStatus = PaymentStatusRefunded
	return nil
}

// FailedPaymentState trạng thái thất bại (kết thúc)
type FailedPaymentState struct{}

func (s *FailedPaymentState) Complete(payment *Payment, paymentDate time.Time) error {
	return errors.New("cannot complete failed payment")
}

func (s *FailedPaymentState) Fail(payment *Payment) error {
	return errors.New("payment already failed")
}

func (s *FailedPaymentState) Refund(payment *Payment) error {
	return errors.New("cannot refund failed payment")
}

// RefundedPaymentState trạng thái đã hoàn tiền (kết thúc)
type RefundedPaymentState struct{}

func (s *RefundedPaymentState) Complete(payment *Payment, paymentDate time.Time) error {
	return errors.New("cannot complete refunded payment")
}

func (s *RefundedPaymentState) Fail(payment *Payment) error {
	return errors.New("cannot fail refunded payment")
}

func (s *RefundedPaymentState) Refund(payment *Payment) error {
	return errors.New("payment already refunded")
}

// GetPaymentState trả về state tương ứng với trạng thái thanh toán
func GetPaymentState(status string) PaymentState {
	switch status {
	case PaymentStatusPending:
		return &PendingPaymentState{}
	case PaymentStatusCompleted:
		return &CompletedPaymentState{}
	case PaymentStatusFailed:
		return &FailedPaymentState{}
	case PaymentStatusRefunded:
		return &RefundedPaymentState{}
	default:
		return &PendingPaymentState{}
	}
}

package services

import (
	"math"
	"testing"
	"time"

	"frontdesk/errors"
	"frontdesk/models"
)

func TestInvoiceByBooking(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "401", 1000, 2)
	customer := seedCustomer(t, db, "lan.tran@example.com")
	day := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
	booking := seedBooking(t, db, room.ID, customer.ID, day, day.AddDate(0, 0, 3), models.BookingStatusConfirmed)

	paymentService := NewPaymentService(db)
	invoiceService := NewInvoiceService(db)

	t.Run("chưa có khoản hoàn tất", func(t *testing.T) {
		_, err := invoiceService.ByBooking(booking.ID)
		if !errors.HasCode(err, errors.ErrCodeNoCompletedPayment) {
			t.Errorf("err = %v, want code %v", err, errors.ErrCodeNoCompletedPayment)
		}
	})

	t.Run("khoản pending không sinh được hóa đơn", func(t *testing.T) {
		if _, err := paymentService.Record(paymentRequest(booking.ID, 500)); err != nil {
			t.Fatalf("Record() lỗi: %v", err)
		}
		_, err := invoiceService.ByBooking(booking.ID)
		if !errors.HasCode(err, errors.ErrCodeNoCompletedPayment) {
			t.Errorf("err = %v, want code %v", err, errors.ErrCodeNoCompletedPayment)
		}
	})

	t.Run("hóa đơn từ khoản hoàn tất gần nhất", func(t *testing.T) {
		first := completePayment(t, paymentService, booking.ID, 1000)
		paidLater := time.Date(2027, 3, 12, 0, 0, 0, 0, time.UTC)
		second, err := paymentService.Record(paymentRequest(booking.ID, 1500))
		if err != nil {
			t.Fatalf("Record() lỗi: %v", err)
		}
		if _, err := paymentService.UpdateStatus(second.ID, models.PaymentStatusCompleted, &paidLater); err != nil {
			t.Fatalf("hoàn tất thanh toán lỗi: %v", err)
		}

		invoice, err := invoiceService.ByBooking(booking.ID)
		if err != nil {
			t.Fatalf("ByBooking() lỗi: %v", err)
		}

		if invoice.InvoiceNo != "INV-"+second.TransactionID {
			t.Errorf("invoiceNo = %s, phải lấy theo khoản hoàn tất gần nhất (want INV-%s)", invoice.InvoiceNo, second.TransactionID)
		}
		if invoice.InvoiceNo == "INV-"+first.TransactionID {
			t.Error("không được lấy khoản hoàn tất cũ hơn")
		}
		if invoice.BookingReference != booking.BookingReference {
			t.Errorf("bookingReference = %s, want %s", invoice.BookingReference, booking.BookingReference)
		}
		if invoice.CustomerName != customer.FullName() {
			t.Errorf("customerName = %s, want %s", invoice.CustomerName, customer.FullName())
		}
		if invoice.NumberOfNights != 3 {
			t.Errorf("số đêm = %d, want 3", invoice.NumberOfNights)
		}
		if len(invoice.Items) != 1 {
			t.Fatalf("items = %d dòng, want 1", len(invoice.Items))
		}
		if math.Abs(invoice.Items[0].Amount-3000) > 1e-6 || math.Abs(invoice.Total-3000) > 1e-6 {
			t.Errorf("tiền dòng = %v, tổng = %v, want 3000", invoice.Items[0].Amount, invoice.Total)
		}
		// Lịch sử gồm khoản pending 500 và hai khoản completed
		if len(invoice.PaymentHistory) != 3 {
			t.Errorf("paymentHistory = %d khoản, want 3", len(invoice.PaymentHistory))
		}
	})
}

func TestInvoiceByPayment(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "402", 1000, 2)
	customer := seedCustomer(t, db, "lan.tran@example.com")
	day := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
	booking := seedBooking(t, db, room.ID, customer.ID, day, day.AddDate(0, 0, 2), models.BookingStatusConfirmed)

	paymentService := NewPaymentService(db)
	invoiceService := NewInvoiceService(db)

	first := completePayment(t, paymentService, booking.ID, 800)
	completePayment(t, paymentService, booking.ID, 1200)

	// Hóa đơn nhận theo đúng khoản được chỉ định, không phải khoản mới nhất
	invoice, err := invoiceService.ByPayment(first.ID)
	if err != nil {
		t.Fatalf("ByPayment() lỗi: %v", err)
	}
	if invoice.InvoiceNo != "INV-"+first.TransactionID {
		t.Errorf("invoiceNo = %s, want INV-%s", invoice.InvoiceNo, first.TransactionID)
	}
	if invoice.PaymentMethod != first.PaymentMethod {
		t.Errorf("paymentMethod = %s, want %s", invoice.PaymentMethod, first.PaymentMethod)
	}

	if _, err := invoiceService.ByPayment(999); !errors.HasCode(err, errors.ErrCodeDBNotFound) {
		t.Errorf("err với khoản không tồn tại phải là %v", errors.ErrCodeDBNotFound)
	}
}

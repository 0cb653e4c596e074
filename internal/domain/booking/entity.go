package booking

import "github.com/mussol-barber/booking-api/internal/models"

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Complete(ap *models.Appointment) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	return nil
}

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	return nil
}

// AttachReceipt grava a URL do comprovante sem mexer no status;
// a confirmação é uma ação explícita da equipe.
func AttachReceipt(ap *models.Appointment, url string) {
	ap.PaymentReceiptURL = url
}

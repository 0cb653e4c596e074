package booking

import "github.com/mussol-barber/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanConfirm: só um agendamento pendente pode ser confirmado
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: só um agendamento confirmado pode ser concluído
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: qualquer estado não terminal pode ser cancelado
func CanCancel(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanTransition valida um salto arbitrário pedido pelo painel.
func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	if from == to {
		return nil
	}

	switch to {
	case StatusConfirmed:
		return CanConfirm(from)
	case StatusCompleted:
		return CanComplete(from)
	case StatusCancelled:
		return CanCancel(from)
	}

	// ninguém volta para pending
	return httperr.ErrBusiness("invalid_state")
}

// InitialStatus define o status de criação: com comprovante anexado o
// agendamento aguarda revisão manual, sem comprovante entra confirmado.
func InitialStatus(hasReceipt bool) Status {
	if hasReceipt {
		return StatusPending
	}
	return StatusConfirmed
}

package httperr

import "errors"

// BusinessError marca uma falha de regra de negócio (recurso inexistente,
// transição de status proibida). O código viaja do usecase até o handler,
// que o traduz em status HTTP + payload.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness testa o código via errors.As, então funciona mesmo com o
// erro embrulhado no caminho.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

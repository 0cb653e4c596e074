package booking

import "math"

// QuoteTotal calcula o total cobrado do cliente: preço do serviço mais a
// taxa de plataforma, arredondado a centavos. O valor é gravado no
// agendamento na criação e nunca recalculado.
func QuoteTotal(servicePrice, platformFee float64) float64 {
	return math.Round((servicePrice+platformFee)*100) / 100
}

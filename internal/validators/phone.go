package validators

import "strings"

// IsPhoneValid aceita telefones com separadores comuns e exige entre 8
// e 15 dígitos (E.164 no limite superior).
func IsPhoneValid(phone string) bool {
	digits := 0

	for _, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-' || r == '(' || r == ')' || r == ' ' || r == '.':
			// separadores tolerados
		default:
			return false
		}
	}

	return digits >= 8 && digits <= 15
}

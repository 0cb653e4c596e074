package timezone

import "time"

const Default = "America/Sao_Paulo"

// Location resolve o fuso configurado, caindo no padrão quando inválido.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(Default)
	return loc
}

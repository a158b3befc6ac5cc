package phone

import "strings"

// DefaultCountryCode код страны по умолчанию для локальных номеров (Аргентина)
const DefaultCountryCode = "54"

// Normalize приводит телефон к формату E.164
// - Убирает пробелы, дефисы, скобки; оставляет только цифры
// - Убирает ведущий 0 (054 → 54)
// - 10-15 цифр: считается номером с кодом страны → +цифры
// - 7-9 цифр: считается локальным номером → +countryCode+цифры
func Normalize(raw string, countryCode string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	digits = strings.TrimPrefix(digits, "0")

	switch {
	case len(digits) >= 10 && len(digits) <= 15:
		return "+" + digits
	case len(digits) >= 7 && len(digits) <= 9:
		return "+" + countryCode + digits
	case len(digits) > 0:
		return "+" + digits
	default:
		return strings.TrimSpace(raw)
	}
}

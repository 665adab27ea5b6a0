package estimator

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders integer centavos as a Brazilian-formatted currency
// string, e.g. 3750000 -> "R$ 37.500,00".
func FormatBRL(cents int64) string {
	return brl.Sprintf("R$ %.2f", FromCents(cents))
}

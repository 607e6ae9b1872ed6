package console

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formata valores para exibição de acordo com o idioma escolhido.
// O motor de projeção nunca formata; isso é responsabilidade da apresentação.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// NewFormatter cria um Formatter para a tag de idioma (ex.: "de", "en-US").
// Tags inválidas caem para alemão, o idioma do modelo de negócio.
func NewFormatter(locale, currency string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.German
	}
	if currency == "" {
		currency = "€"
	}
	return &Formatter{printer: message.NewPrinter(tag), currency: currency}
}

// Money formata com duas casas decimais e o símbolo da moeda, ex.: "12.345,67 €".
func (f *Formatter) Money(v float64) string {
	return f.Decimal(v) + " " + f.currency
}

// Decimal formata com exatamente duas casas decimais.
func (f *Formatter) Decimal(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Count formata sem casas decimais, ex.: "1.560".
func (f *Formatter) Count(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

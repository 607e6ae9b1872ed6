package projection

import "github.com/diillson/bizcase-simulator-go/internal/domain/entity"

// SummarizeYears soma o razão por ano de projeção. Cada resumo é um filtro
// sobre as linhas mensais; nada é recalculado.
func SummarizeYears(ledger Ledger) []entity.YearSummary {
	summaries := make([]entity.YearSummary, 0, ledger.Years())
	for n := 1; n <= ledger.Years(); n++ {
		summaries = append(summaries, summarizeRows(n, ledger.Year(n)))
	}
	return summaries
}

func summarizeRows(year int, rows []entity.LedgerRow) entity.YearSummary {
	s := entity.YearSummary{Year: year, Months: len(rows)}
	if len(rows) == 0 {
		return s
	}
	s.FirstLabel = rows[0].MonthLabel
	s.LastLabel = rows[len(rows)-1].MonthLabel

	units, gross, marginII, licenseOne, licenseTwo, residual :=
		decimalZero, decimalZero, decimalZero, decimalZero, decimalZero, decimalZero
	for _, r := range rows {
		s.NewPartners += r.NewPartners
		units = units.Add(dec(r.TotalUnits))
		gross = gross.Add(dec(r.GrossMargin))
		marginII = marginII.Add(dec(r.MarginII))
		licenseOne = licenseOne.Add(dec(r.LicenseOneFee))
		licenseTwo = licenseTwo.Add(dec(r.LicenseTwoFee))
		residual = residual.Add(dec(r.ResidualProfit))
	}
	s.TotalUnits = materialize(units)
	s.GrossMargin = materialize(gross)
	s.MarginII = materialize(marginII)
	s.LicenseOneFee = materialize(licenseOne)
	s.LicenseTwoFee = materialize(licenseTwo)
	s.ResidualProfit = materialize(residual)
	return s
}

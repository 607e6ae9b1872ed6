package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
	"github.com/diillson/bizcase-simulator-go/pkg/console"
	"github.com/pterm/pterm"
)

// render exibe os números principais, as tabelas e, se pedido, as barras de tendência.
func (uc *ProjectionUseCase) render(result entity.ProjectionResult, args *types.CLIArgs) {
	f := console.NewFormatter(args.Locale, "€")

	uc.console.DisplayPanel("Key Figures", keyFiguresBody(result, f))

	if !args.Yearly {
		uc.console.Println(uc.ledgerTable(result.Rows, f).Render())
	}
	uc.console.Println(uc.yearTable(result.Years, f).Render())

	if !args.Trend {
		return
	}

	if args.Yearly {
		uc.console.DisplayTrendBars("Residual Profit per Year", yearSeries(result.Years, func(y entity.YearSummary) float64 {
			return y.ResidualProfit
		}), f.Money)
		uc.console.DisplayTrendBars("License Revenue per Year", yearSeries(result.Years, func(y entity.YearSummary) float64 {
			return y.LicenseOneFee + y.LicenseTwoFee
		}), f.Money)
		return
	}

	uc.console.DisplayTrendBars("Residual Profit per Month", monthSeries(result.Rows, func(r entity.LedgerRow) float64 {
		return r.ResidualProfit
	}), f.Money)
	uc.console.DisplayTrendBars("License Revenue per Month", monthSeries(result.Rows, func(r entity.LedgerRow) float64 {
		return r.LicenseOneFee + r.LicenseTwoFee
	}), f.Money)
}

func keyFiguresBody(result entity.ProjectionResult, f *console.Formatter) string {
	k := result.KPIs
	p := result.Parameters

	lines := []struct {
		label string
		value string
	}{
		{"Horizon", fmt.Sprintf("%d months from %02d/%d", p.HorizonMonths, p.StartMonth, p.StartYear)},
		{"New partners", f.Count(float64(k.TotalNewPartners))},
		{"Partners with a reorder", f.Count(float64(k.PartnersWithAtLeastOneReorder))},
		{"Partners without a reorder", f.Count(float64(k.PartnersWithoutReorder))},
		{"Units per partner (year 1)", f.Decimal(k.AverageUnitsPerPartnerYear1)},
		{"Units per partner (year 2)", f.Decimal(k.AverageUnitsPerPartnerYear2)},
		{"Revenue per partner (year 1)", f.Money(k.AverageRevenuePerPartnerYear1)},
		{"Revenue per partner (year 2)", f.Money(k.AverageRevenuePerPartnerYear2)},
		{"Units over horizon", f.Decimal(k.TotalUnitsOverHorizon)},
		{"Units per month", f.Decimal(k.AverageUnitsPerMonth)},
		{"License 1 revenue", f.Money(k.TotalLicenseOneRevenue)},
		{"License 2 revenue", f.Money(k.TotalLicenseTwoRevenue)},
		{"License 1 last month", f.Money(k.LastMonthLicenseOneRevenue)},
		{"License 2 last month", f.Money(k.LastMonthLicenseTwoRevenue)},
		{"Margin II", f.Money(k.TotalMarginII)},
		{"Residual profit", f.Money(k.TotalResidualProfit)},
		{"Profit per unit", f.Money(result.UnitEconomics.ProfitPerUnit)},
	}

	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%-30s %s", l.label, pterm.Bold.Sprint(l.value))
	}
	return sb.String()
}

func (uc *ProjectionUseCase) ledgerTable(rows []entity.LedgerRow, f *console.Formatter) types.TableInterface {
	table := uc.console.CreateTable()
	for _, col := range []string{"Month", "Period", "New", "Reorder", "Units", "Gross Margin", "Margin II", "License 1", "License 2", "Residual"} {
		table.AddColumn(col)
	}
	for _, r := range rows {
		table.AddRow(
			r.Month,
			r.MonthLabel,
			r.NewPartners,
			r.ReorderPartners,
			f.Decimal(r.TotalUnits),
			f.Money(r.GrossMargin),
			f.Money(r.MarginII),
			f.Money(r.LicenseOneFee),
			f.Money(r.LicenseTwoFee),
			f.Money(r.ResidualProfit),
		)
	}
	return table
}

func (uc *ProjectionUseCase) yearTable(years []entity.YearSummary, f *console.Formatter) types.TableInterface {
	table := uc.console.CreateTable()
	for _, col := range []string{"Year", "Period", "New", "Units", "Gross Margin", "Margin II", "License 1", "License 2", "Residual"} {
		table.AddColumn(col)
	}
	for _, y := range years {
		table.AddRow(
			y.Year,
			fmt.Sprintf("%s - %s", y.FirstLabel, y.LastLabel),
			y.NewPartners,
			f.Decimal(y.TotalUnits),
			f.Money(y.GrossMargin),
			f.Money(y.MarginII),
			f.Money(y.LicenseOneFee),
			f.Money(y.LicenseTwoFee),
			f.Money(y.ResidualProfit),
		)
	}
	return table
}

func monthSeries(rows []entity.LedgerRow, value func(entity.LedgerRow) float64) []types.MonthlyValue {
	series := make([]types.MonthlyValue, 0, len(rows))
	for _, r := range rows {
		series = append(series, types.MonthlyValue{Label: r.MonthLabel, Value: value(r)})
	}
	return series
}

func yearSeries(years []entity.YearSummary, value func(entity.YearSummary) float64) []types.MonthlyValue {
	series := make([]types.MonthlyValue, 0, len(years))
	for _, y := range years {
		series = append(series, types.MonthlyValue{Label: fmt.Sprintf("Year %d", y.Year), Value: value(y)})
	}
	return series
}

package projection

import (
	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Aggregate deriva os KPIs de uma execução a partir das coortes e do razão.
func Aggregate(p entity.Parameters, cohorts []int, ledger Ledger) entity.KPIs {
	totalNew := sumInts(cohorts)
	withReorder := PartnersWithAtLeastOneReorder(p, cohorts)

	unitsYear1 := AverageUnitsPerPartner(p, cohorts, 1)
	unitsYear2 := AverageUnitsPerPartner(p, cohorts, 2)
	sellPrice := dec(p.UnitSellPrice)

	licenseOne, licenseTwo, marginII, residual := decimalZero, decimalZero, decimalZero, decimalZero
	for _, row := range ledger.Rows {
		licenseOne = licenseOne.Add(dec(row.LicenseOneFee))
		licenseTwo = licenseTwo.Add(dec(row.LicenseTwoFee))
		marginII = marginII.Add(dec(row.MarginII))
		residual = residual.Add(dec(row.ResidualProfit))
	}
	totalUnits := ledger.TotalUnits()

	kpis := entity.KPIs{
		TotalNewPartners:              totalNew,
		PartnersWithAtLeastOneReorder: withReorder,
		PartnersWithoutReorder:        totalNew - withReorder,
		AverageUnitsPerPartnerYear1:   materialize(unitsYear1),
		AverageUnitsPerPartnerYear2:   materialize(unitsYear2),
		AverageRevenuePerPartnerYear1: materialize(unitsYear1.Mul(sellPrice)),
		AverageRevenuePerPartnerYear2: materialize(unitsYear2.Mul(sellPrice)),
		TotalUnitsOverHorizon:         materialize(totalUnits),
		TotalLicenseOneRevenue:        materialize(licenseOne),
		TotalLicenseTwoRevenue:        materialize(licenseTwo),
		TotalMarginII:                 materialize(marginII),
		TotalResidualProfit:           materialize(residual),
	}

	if n := ledger.Len(); n > 0 {
		months := decimal.NewFromInt(int64(n))
		kpis.AverageUnitsPerMonth = materialize(totalUnits.Div(months))
		kpis.AverageLicenseOnePerMonth = materialize(licenseOne.Div(months))
		kpis.AverageLicenseTwoPerMonth = materialize(licenseTwo.Div(months))

		last := ledger.Rows[n-1]
		kpis.LastMonthLicenseOneRevenue = last.LicenseOneFee
		kpis.LastMonthLicenseTwoRevenue = last.LicenseTwoFee
	}

	return kpis
}

// PartnersWithAtLeastOneReorder estima quantos parceiros recompram ao menos uma
// vez no horizonte: a fração de recompra de toda coorte adquirida pelo menos um
// ciclo completo antes do fim. Coortes posteriores não contam.
//
// Com ReorderCycleMonths == 0 as recompras estão desligadas e o resultado é 0,
// e não a soma de todas as coortes.
func PartnersWithAtLeastOneReorder(p entity.Parameters, cohorts []int) int {
	if !p.ReordersEnabled() {
		return 0
	}
	limit := len(cohorts) - p.ReorderCycleMonths
	if limit <= 0 {
		return 0
	}
	eligible := decimal.NewFromInt(int64(sumInts(cohorts[:limit])))
	return roundCount(eligible.Mul(p.ReorderShare()))
}

// LifecycleUnits retorna as unidades que um parceiro pede no ano n da própria
// vida (idades 12(n-1) a 12n-1): o display inicial na idade 0, mais uma recompra
// em cada idade múltipla positiva do ciclo.
func LifecycleUnits(p entity.Parameters, year int) decimal.Decimal {
	if year < 1 {
		return decimalZero
	}
	unitsPerDisplay := decimal.NewFromInt(int64(p.UnitsPerDisplay))

	units := decimalZero
	if year == 1 {
		units = unitsPerDisplay
	}
	if !p.ReordersEnabled() {
		return units
	}

	reorder := p.ReorderShare().Mul(unitsPerDisplay)
	for age := (year - 1) * 12; age < year*12; age++ {
		if age > 0 && age%p.ReorderCycleMonths == 0 {
			units = units.Add(reorder)
		}
	}
	return units
}

// AverageUnitsPerPartner pondera as unidades do ano n pelo tamanho das coortes.
// Retorna zero quando as coortes não têm parceiros.
func AverageUnitsPerPartner(p entity.Parameters, cohorts []int, year int) decimal.Decimal {
	totalNew := sumInts(cohorts)
	if totalNew == 0 {
		return decimalZero
	}

	perPartner := LifecycleUnits(p, year)
	weighted := decimalZero
	for _, size := range cohorts {
		weighted = weighted.Add(decimal.NewFromInt(int64(size)).Mul(perPartner))
	}
	return weighted.Div(decimal.NewFromInt(int64(totalNew)))
}

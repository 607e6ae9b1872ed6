package projection

import (
	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// volume guarda as unidades de um mês sem arredondamento, para que os totais
// não acumulem o arredondamento das linhas.
type volume struct {
	newUnits     decimal.Decimal
	reorderUnits decimal.Decimal
	totalUnits   decimal.Decimal
}

// Ledger é o resultado de BuildLedger, em ordem de mês.
type Ledger struct {
	Rows    []entity.LedgerRow
	volumes []volume
}

// Len retorna o número de meses do razão.
func (l Ledger) Len() int {
	return len(l.Rows)
}

// Year retorna as linhas do ano de projeção n (a partir de 1): meses 12(n-1) a 12n-1
// do horizonte. O último ano pode ser parcial; anos além do horizonte vêm vazios.
func (l Ledger) Year(n int) []entity.LedgerRow {
	if n < 1 {
		return nil
	}
	from := (n - 1) * 12
	if from >= len(l.Rows) {
		return nil
	}
	to := from + 12
	if to > len(l.Rows) {
		to = len(l.Rows)
	}
	return l.Rows[from:to]
}

// Years retorna quantos anos de projeção (possivelmente parciais) o razão cobre.
func (l Ledger) Years() int {
	return (len(l.Rows) + 11) / 12
}

// TotalUnits soma as unidades de todos os meses sem arredondamento.
func (l Ledger) TotalUnits() decimal.Decimal {
	total := decimalZero
	for _, v := range l.volumes {
		total = total.Add(v.totalUnits)
	}
	return total
}

// reorderSchedule retorna as unidades de recompra devidas em cada mês.
//
// Uma coorte adquirida no mês j recompra em todo mês i cuja idade i-j é múltiplo
// positivo do ciclo, durante todo o horizonte. As coortes devidas no mês i são
// portanto as devidas no mês i-ciclo mais a própria coorte do mês i-ciclo, o que
// permite uma única passada pelo horizonte.
func reorderSchedule(p entity.Parameters, cohorts []int) []decimal.Decimal {
	due := make([]decimal.Decimal, len(cohorts))
	for i := range due {
		due[i] = decimalZero
	}
	if !p.ReordersEnabled() {
		return due
	}

	perPartner := p.ReorderShare().Mul(decimal.NewFromInt(int64(p.UnitsPerDisplay)))
	cycle := p.ReorderCycleMonths
	for i := cycle; i < len(cohorts); i++ {
		acquired := decimal.NewFromInt(int64(cohorts[i-cycle])).Mul(perPartner)
		due[i] = due[i-cycle].Add(acquired)
	}
	return due
}

// BuildLedger calcula uma linha por mês: unidades dos novos parceiros e das
// recompras, depois margem bruta, custos variáveis, margem II, as duas licenças
// e o lucro residual, nessa ordem.
//
// A licença 2 incide no mês em que o total acumulado de parceiros até aquele mês
// passa de LicenseTwoThreshold.
func BuildLedger(p entity.Parameters, cohorts []int) Ledger {
	ledger := Ledger{
		Rows:    make([]entity.LedgerRow, len(cohorts)),
		volumes: make([]volume, len(cohorts)),
	}

	unitsPerDisplay := decimal.NewFromInt(int64(p.UnitsPerDisplay))
	marginPerUnit := p.MarginPerUnit()
	salesPerUnit := dec(p.SalesCostPerUnit)
	logisticsPerUnit := dec(p.LogisticsCostPerUnit)
	licenseOneRate := p.NetLicenseOneRate()
	licenseTwoRate := dec(p.LicenseTwoFeePerUnit)
	reorderShare := p.ReorderShare()

	reorders := reorderSchedule(p, cohorts)
	cumulative := 0

	for i, size := range cohorts {
		cumulative += size

		partners := decimal.NewFromInt(int64(size))
		newUnits := partners.Mul(unitsPerDisplay)
		totalUnits := newUnits.Add(reorders[i])

		grossMargin := round2(marginPerUnit.Mul(totalUnits))
		salesCost := round2(salesPerUnit.Mul(totalUnits))
		logisticsCost := round2(logisticsPerUnit.Mul(totalUnits))
		marginII := grossMargin.Sub(salesCost).Sub(logisticsCost)

		licenseOne := round2(licenseOneRate.Mul(totalUnits))
		licenseTwo := decimalZero
		if cumulative > p.LicenseTwoThreshold {
			licenseTwo = round2(licenseTwoRate.Mul(totalUnits))
		}
		residual := marginII.Sub(licenseOne).Sub(licenseTwo)

		ledger.volumes[i] = volume{
			newUnits:     newUnits,
			reorderUnits: reorders[i],
			totalUnits:   totalUnits,
		}
		ledger.Rows[i] = entity.LedgerRow{
			Month:              i + 1,
			MonthLabel:         MonthLabel(p.StartYear, p.StartMonth, i),
			NewPartners:        size,
			ReorderPartners:    roundCount(partners.Mul(reorderShare)),
			CumulativePartners: cumulative,
			NewUnits:           materialize(newUnits),
			ReorderUnits:       materialize(reorders[i]),
			TotalUnits:         materialize(totalUnits),
			GrossMargin:        grossMargin.InexactFloat64(),
			SalesCost:          salesCost.InexactFloat64(),
			LogisticsCost:      logisticsCost.InexactFloat64(),
			MarginII:           marginII.InexactFloat64(),
			LicenseOneFee:      licenseOne.InexactFloat64(),
			LicenseTwoFee:      licenseTwo.InexactFloat64(),
			ResidualProfit:     residual.InexactFloat64(),
		}
	}

	return ledger
}

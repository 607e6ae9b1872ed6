package projection

import (
	"reflect"
	"testing"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// reorderUnitsAt recalcula as recompras do mês i direto pela definição de idade
// módulo ciclo, como referência para o cálculo em uma passada.
func reorderUnitsAt(p entity.Parameters, cohorts []int, i int) decimal.Decimal {
	total := decimal.Zero
	if p.ReorderCycleMonths == 0 {
		return total
	}
	perPartner := p.ReorderShare().Mul(decimal.NewFromInt(int64(p.UnitsPerDisplay)))
	for j := 0; j < i; j++ {
		age := i - j
		if age >= p.ReorderCycleMonths && age%p.ReorderCycleMonths == 0 {
			total = total.Add(decimal.NewFromInt(int64(cohorts[j])).Mul(perPartner))
		}
	}
	return total
}

func ledgerParams() entity.Parameters {
	p := entity.DefaultParameters()
	p.HorizonMonths = 36
	p.SalesCostPerUnit = 0.35
	p.LogisticsCostPerUnit = 0.45
	p.ReorderRate = 33.3
	p.ReorderCycleMonths = 2
	return p
}

func TestBuildLedgerRowCount(t *testing.T) {
	p := ledgerParams()
	ledger := BuildLedger(p, GenerateCohorts(p))
	if ledger.Len() != p.HorizonMonths {
		t.Fatalf("ledger.Len() = %d, want %d", ledger.Len(), p.HorizonMonths)
	}
	for i, row := range ledger.Rows {
		if row.Month != i+1 {
			t.Errorf("row %d: Month = %d, want %d", i, row.Month, i+1)
		}
	}
}

func TestBuildLedgerSingleCohortReordersEveryCycle(t *testing.T) {
	p := entity.Parameters{
		HorizonMonths:      3,
		StartYear:          2025,
		StartMonth:         1,
		UnitsPerDisplay:    32,
		ReorderRate:        50,
		ReorderCycleMonths: 1,
	}
	ledger := BuildLedger(p, []int{1, 0, 0})

	want := []float64{0, 16, 16}
	for i, w := range want {
		if got := ledger.Rows[i].ReorderUnits; got != w {
			t.Errorf("month %d: ReorderUnits = %v, want %v", i, got, w)
		}
	}
	if got := ledger.Rows[0].NewUnits; got != 32 {
		t.Errorf("month 0: NewUnits = %v, want 32", got)
	}
	if got := ledger.Rows[2].TotalUnits; got != 16 {
		t.Errorf("month 2: TotalUnits = %v, want 16", got)
	}
}

func TestBuildLedgerReordersExtendPastSecondYear(t *testing.T) {
	p := entity.Parameters{
		HorizonMonths:      40,
		StartYear:          2025,
		StartMonth:         1,
		UnitsPerDisplay:    10,
		ReorderRate:        100,
		ReorderCycleMonths: 6,
	}
	cohorts := make([]int, 40)
	cohorts[0] = 1
	ledger := BuildLedger(p, cohorts)

	for i, row := range ledger.Rows {
		want := 0.0
		if i > 0 && i%6 == 0 {
			want = 10
		}
		if row.ReorderUnits != want {
			t.Errorf("month %d: ReorderUnits = %v, want %v", i, row.ReorderUnits, want)
		}
	}
}

func TestReorderScheduleMatchesAgeModuloDefinition(t *testing.T) {
	for _, cycle := range []int{1, 2, 3, 5, 12, 13, 50} {
		p := ledgerParams()
		p.ReorderCycleMonths = cycle
		p.GrowthIncrement = -1
		p.GrowthIntervalMonths = 5
		cohorts := GenerateCohorts(p)

		due := reorderSchedule(p, cohorts)
		for i := range cohorts {
			want := reorderUnitsAt(p, cohorts, i)
			if !due[i].Equal(want) {
				t.Errorf("cycle %d month %d: reorder units = %s, want %s", cycle, i, due[i], want)
			}
		}
	}
}

func TestBuildLedgerReordersDisabled(t *testing.T) {
	p := ledgerParams()
	p.ReorderCycleMonths = 0
	p.ReorderRate = 100

	ledger := BuildLedger(p, GenerateCohorts(p))
	for i, row := range ledger.Rows {
		if row.ReorderUnits != 0 {
			t.Errorf("month %d: ReorderUnits = %v, want 0", i, row.ReorderUnits)
		}
		if row.TotalUnits != row.NewUnits {
			t.Errorf("month %d: TotalUnits = %v, want NewUnits %v", i, row.TotalUnits, row.NewUnits)
		}
	}
}

func TestBuildLedgerMarginLayersHoldExactly(t *testing.T) {
	p := ledgerParams()
	p.UnitCost = 7.13
	p.UnitSellPrice = 12.87
	p.LicenseTwoThreshold = 10

	ledger := BuildLedger(p, GenerateCohorts(p))
	for i, row := range ledger.Rows {
		marginII := dec(row.GrossMargin).Sub(dec(row.SalesCost)).Sub(dec(row.LogisticsCost))
		if !marginII.Equal(dec(row.MarginII)) {
			t.Errorf("month %d: MarginII = %v, want %s", i, row.MarginII, marginII)
		}
		residual := dec(row.MarginII).Sub(dec(row.LicenseOneFee)).Sub(dec(row.LicenseTwoFee))
		if !residual.Equal(dec(row.ResidualProfit)) {
			t.Errorf("month %d: ResidualProfit = %v, want %s", i, row.ResidualProfit, residual)
		}
	}
}

func TestBuildLedgerDecomposition(t *testing.T) {
	p := entity.Parameters{
		HorizonMonths:           1,
		StartYear:               2025,
		StartMonth:              7,
		UnitCost:                6.9,
		UnitSellPrice:           12.9,
		SalesCostPerUnit:        0.5,
		LogisticsCostPerUnit:    0.25,
		UnitsPerDisplay:         32,
		LicenseOneGrossPerUnit:  1.2,
		PostcardCostPerUnit:     0.1,
		GraphicShareCostPerUnit: 0.2,
		LicenseTwoFeePerUnit:    1.3,
		LicenseTwoThreshold:     3,
	}
	row := BuildLedger(p, []int{4}).Rows[0]

	want := entity.LedgerRow{
		Month:              1,
		MonthLabel:         "07/2025",
		NewPartners:        4,
		ReorderPartners:    0,
		CumulativePartners: 4,
		NewUnits:           128,
		ReorderUnits:       0,
		TotalUnits:         128,
		GrossMargin:        768,
		SalesCost:          64,
		LogisticsCost:      32,
		MarginII:           672,
		LicenseOneFee:      115.2,
		LicenseTwoFee:      166.4,
		ResidualProfit:     390.4,
	}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("row = %+v\nwant  %+v", row, want)
	}
}

func TestBuildLedgerLicenseOneNeverSubsidises(t *testing.T) {
	p := entity.Parameters{
		HorizonMonths:           2,
		StartMonth:              1,
		UnitsPerDisplay:         10,
		LicenseOneGrossPerUnit:  0.2,
		PostcardCostPerUnit:     0.5,
		GraphicShareCostPerUnit: 0.5,
	}
	for _, row := range BuildLedger(p, []int{3, 3}).Rows {
		if row.LicenseOneFee != 0 {
			t.Errorf("month %d: LicenseOneFee = %v, want 0", row.Month, row.LicenseOneFee)
		}
	}
}

func TestNetLicenseOneRate(t *testing.T) {
	p := entity.Parameters{LicenseOneGrossPerUnit: 1.2, PostcardCostPerUnit: 0.1, GraphicShareCostPerUnit: 0.2}
	if got := p.NetLicenseOneRate(); !got.Equal(decimal.RequireFromString("0.9")) {
		t.Errorf("NetLicenseOneRate() = %s, want 0.9", got)
	}

	p.PostcardCostPerUnit = 2
	if got := p.NetLicenseOneRate(); !got.IsZero() {
		t.Errorf("NetLicenseOneRate() = %s, want 0", got)
	}
}

func TestBuildLedgerLicenseTwoGatesOnCumulativePartners(t *testing.T) {
	p := entity.Parameters{
		HorizonMonths:        3,
		StartMonth:           1,
		UnitsPerDisplay:      1,
		LicenseTwoFeePerUnit: 1,
		LicenseTwoThreshold:  3,
	}

	tests := []struct {
		name      string
		cohorts   []int
		firstPaid int
	}{
		// acumulado 4, 8, 12: já acima do limite no mês 0
		{name: "crossed immediately", cohorts: []int{4, 4, 4}, firstPaid: 0},
		// acumulado 1, 2, 4: nenhuma coorte passa de 3, o total acumulado passa no mês 2
		{name: "crossed by accumulation", cohorts: []int{1, 1, 2}, firstPaid: 2},
		// acumulado 3, 3, 3: igual não é acima
		{name: "never crossed", cohorts: []int{3, 0, 0}, firstPaid: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := BuildLedger(p, tt.cohorts).Rows
			first := -1
			for i, row := range rows {
				if row.LicenseTwoFee != 0 {
					first = i
					break
				}
			}
			if first != tt.firstPaid {
				t.Errorf("first month with tier-2 fee = %d, want %d", first, tt.firstPaid)
			}
			for i := first; first >= 0 && i < len(rows); i++ {
				if rows[i].NewPartners > 0 && rows[i].LicenseTwoFee == 0 {
					t.Errorf("month %d: tier-2 fee dropped back to 0", i)
				}
			}
		})
	}
}

func TestBuildLedgerRoundsHalfAwayFromZero(t *testing.T) {
	p := entity.Parameters{
		HorizonMonths:   1,
		StartMonth:      1,
		UnitsPerDisplay: 1,
		UnitCost:        0,
		UnitSellPrice:   0.125,
	}
	if got := BuildLedger(p, []int{1}).Rows[0].GrossMargin; got != 0.13 {
		t.Errorf("GrossMargin = %v, want 0.13", got)
	}

	p.UnitSellPrice = -0.125
	if got := BuildLedger(p, []int{1}).Rows[0].GrossMargin; got != -0.13 {
		t.Errorf("GrossMargin = %v, want -0.13", got)
	}
}

func TestBuildLedgerReorderPartners(t *testing.T) {
	p := entity.Parameters{HorizonMonths: 3, StartMonth: 1, UnitsPerDisplay: 1, ReorderRate: 50, ReorderCycleMonths: 1}
	rows := BuildLedger(p, []int{3, 5, -3}).Rows

	want := []int{2, 3, -2}
	for i, w := range want {
		if rows[i].ReorderPartners != w {
			t.Errorf("month %d: ReorderPartners = %d, want %d", i, rows[i].ReorderPartners, w)
		}
	}
}

func TestBuildLedgerIsIdempotent(t *testing.T) {
	p := ledgerParams()
	first := BuildLedger(p, GenerateCohorts(p))
	second := BuildLedger(p, GenerateCohorts(p))
	if !reflect.DeepEqual(first.Rows, second.Rows) {
		t.Error("two runs with identical parameters produced different rows")
	}
}

func TestLedgerYear(t *testing.T) {
	p := ledgerParams()
	p.HorizonMonths = 30
	ledger := BuildLedger(p, GenerateCohorts(p))

	if got := ledger.Years(); got != 3 {
		t.Fatalf("Years() = %d, want 3", got)
	}
	tests := []struct {
		year       int
		wantLen    int
		firstMonth int
	}{
		{1, 12, 1},
		{2, 12, 13},
		{3, 6, 25},
		{4, 0, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		rows := ledger.Year(tt.year)
		if len(rows) != tt.wantLen {
			t.Errorf("Year(%d) has %d rows, want %d", tt.year, len(rows), tt.wantLen)
			continue
		}
		if tt.wantLen > 0 && rows[0].Month != tt.firstMonth {
			t.Errorf("Year(%d) starts at month %d, want %d", tt.year, rows[0].Month, tt.firstMonth)
		}
	}
}

package projection

import "github.com/shopspring/decimal"

var (
	decimalZero    = decimal.Zero
	moneyPrecision = int32(2)
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// round2 arredonda para duas casas, metade para longe do zero.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPrecision)
}

// materialize arredonda d para uma linha ou KPI e converte para float64.
func materialize(d decimal.Decimal) float64 {
	return round2(d).InexactFloat64()
}

// roundCount arredonda para inteiro, metade para longe do zero.
func roundCount(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}

func sumInts(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

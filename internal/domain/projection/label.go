package projection

import "fmt"

// MonthLabel formata o mês i de um horizonte iniciado em startYear/startMonth
// como MM/AAAA.
func MonthLabel(startYear, startMonth, i int) string {
	offset := startMonth - 1 + i
	year := startYear + floorDiv(offset, 12)
	month := offset - floorDiv(offset, 12)*12 + 1
	return fmt.Sprintf("%02d/%d", month, year)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

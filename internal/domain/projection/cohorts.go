package projection

import "github.com/diillson/bizcase-simulator-go/internal/domain/entity"

// GenerateCohorts retorna quantos parceiros são adquiridos em cada mês do
// horizonte. A cada GrowthIntervalMonths o tamanho da coorte sobe GrowthIncrement;
// intervalo zero desliga o crescimento.
//
// Os tamanhos não são limitados: um incremento negativo pode levá-los abaixo de
// zero e o valor segue sem alteração.
func GenerateCohorts(p entity.Parameters) []int {
	if p.HorizonMonths <= 0 {
		return []int{}
	}

	cohorts := make([]int, p.HorizonMonths)
	for j := range cohorts {
		step := 0
		if p.GrowthIntervalMonths > 0 {
			step = (j / p.GrowthIntervalMonths) * p.GrowthIncrement
		}
		cohorts[j] = p.BasePartnersPerMonth + step
	}
	return cohorts
}

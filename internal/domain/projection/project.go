package projection

import "github.com/diillson/bizcase-simulator-go/internal/domain/entity"

// Project executa o cálculo completo: coortes, razão mensal, anos e KPIs.
// RunID fica vazio; quem precisar de um identificador o atribui.
func Project(p entity.Parameters) entity.ProjectionResult {
	cohorts := GenerateCohorts(p)
	ledger := BuildLedger(p, cohorts)

	return entity.ProjectionResult{
		Parameters:    p,
		Cohorts:       cohorts,
		Rows:          ledger.Rows,
		Years:         SummarizeYears(ledger),
		KPIs:          Aggregate(p, cohorts, ledger),
		UnitEconomics: UnitEconomics(p),
	}
}

// UnitEconomics materializa os valores por unidade derivados de p.
func UnitEconomics(p entity.Parameters) entity.UnitEconomics {
	return entity.UnitEconomics{
		MarginPerUnit:       materialize(p.MarginPerUnit()),
		ContributionPerUnit: materialize(p.ContributionPerUnit()),
		NetLicenseOneRate:   materialize(p.NetLicenseOneRate()),
		ProfitPerUnit:       materialize(p.ProfitPerUnit()),
	}
}

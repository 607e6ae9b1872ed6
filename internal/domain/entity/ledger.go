package entity

// LedgerRow é um mês da projeção. Colunas monetárias e de unidades fracionárias
// vêm arredondadas para duas casas; contagens de parceiros são exatas.
type LedgerRow struct {
	Month              int     `json:"month"`
	MonthLabel         string  `json:"month_label"`
	NewPartners        int     `json:"new_partners"`
	ReorderPartners    int     `json:"reorder_partners"`
	CumulativePartners int     `json:"cumulative_partners"`
	NewUnits           float64 `json:"new_units"`
	ReorderUnits       float64 `json:"reorder_units"`
	TotalUnits         float64 `json:"total_units"`
	GrossMargin        float64 `json:"gross_margin"`
	SalesCost          float64 `json:"sales_cost"`
	LogisticsCost      float64 `json:"logistics_cost"`
	MarginII           float64 `json:"margin_ii"`
	LicenseOneFee      float64 `json:"license_one_fee"`
	LicenseTwoFee      float64 `json:"license_two_fee"`
	ResidualProfit     float64 `json:"residual_profit"`
}

// YearSummary soma as colunas do razão em um ano de projeção.
type YearSummary struct {
	Year           int     `json:"year"`
	Months         int     `json:"months"`
	FirstLabel     string  `json:"first_label"`
	LastLabel      string  `json:"last_label"`
	NewPartners    int     `json:"new_partners"`
	TotalUnits     float64 `json:"total_units"`
	GrossMargin    float64 `json:"gross_margin"`
	MarginII       float64 `json:"margin_ii"`
	LicenseOneFee  float64 `json:"license_one_fee"`
	LicenseTwoFee  float64 `json:"license_two_fee"`
	ResidualProfit float64 `json:"residual_profit"`
}

// KPIs são os agregados de uma execução. Toda média é zero quando o
// denominador é zero.
type KPIs struct {
	TotalNewPartners              int     `json:"total_new_partners"`
	PartnersWithAtLeastOneReorder int     `json:"partners_with_at_least_one_reorder"`
	PartnersWithoutReorder        int     `json:"partners_without_reorder"`
	AverageUnitsPerPartnerYear1   float64 `json:"average_units_per_partner_year1"`
	AverageUnitsPerPartnerYear2   float64 `json:"average_units_per_partner_year2"`
	AverageRevenuePerPartnerYear1 float64 `json:"average_revenue_per_partner_year1"`
	AverageRevenuePerPartnerYear2 float64 `json:"average_revenue_per_partner_year2"`
	TotalUnitsOverHorizon         float64 `json:"total_units_over_horizon"`
	AverageUnitsPerMonth          float64 `json:"average_units_per_month"`
	TotalLicenseOneRevenue        float64 `json:"total_license_one_revenue"`
	TotalLicenseTwoRevenue        float64 `json:"total_license_two_revenue"`
	AverageLicenseOnePerMonth     float64 `json:"average_license_one_per_month"`
	AverageLicenseTwoPerMonth     float64 `json:"average_license_two_per_month"`
	LastMonthLicenseOneRevenue    float64 `json:"last_month_license_one_revenue"`
	LastMonthLicenseTwoRevenue    float64 `json:"last_month_license_two_revenue"`
	TotalMarginII                 float64 `json:"total_margin_ii"`
	TotalResidualProfit           float64 `json:"total_residual_profit"`
}

// UnitEconomics são os valores por unidade derivados dos parâmetros.
type UnitEconomics struct {
	MarginPerUnit       float64 `json:"margin_per_unit"`
	ContributionPerUnit float64 `json:"contribution_per_unit"`
	NetLicenseOneRate   float64 `json:"net_license_one_rate"`
	ProfitPerUnit       float64 `json:"profit_per_unit"`
}

// ProjectionResult é tudo o que uma execução produz. É recalculado por inteiro
// sempre que um parâmetro muda.
type ProjectionResult struct {
	RunID         string        `json:"run_id"`
	Parameters    Parameters    `json:"parameters"`
	Cohorts       []int         `json:"cohorts"`
	Rows          []LedgerRow   `json:"rows"`
	Years         []YearSummary `json:"years"`
	KPIs          KPIs          `json:"kpis"`
	UnitEconomics UnitEconomics `json:"unit_economics"`
}

package entity

import "github.com/shopspring/decimal"

// Parameters reúne as entradas de uma execução da projeção.
type Parameters struct {
	HorizonMonths int `json:"horizon_months" yaml:"horizon_months" toml:"horizon_months"`
	StartYear     int `json:"start_year" yaml:"start_year" toml:"start_year"`
	StartMonth    int `json:"start_month" yaml:"start_month" toml:"start_month"`

	UnitCost             float64 `json:"unit_cost" yaml:"unit_cost" toml:"unit_cost"`
	UnitSellPrice        float64 `json:"unit_sell_price" yaml:"unit_sell_price" toml:"unit_sell_price"`
	SalesCostPerUnit     float64 `json:"sales_cost_per_unit" yaml:"sales_cost_per_unit" toml:"sales_cost_per_unit"`
	LogisticsCostPerUnit float64 `json:"logistics_cost_per_unit" yaml:"logistics_cost_per_unit" toml:"logistics_cost_per_unit"`
	UnitsPerDisplay      int     `json:"units_per_display" yaml:"units_per_display" toml:"units_per_display"`

	BasePartnersPerMonth int `json:"base_partners_per_month" yaml:"base_partners_per_month" toml:"base_partners_per_month"`
	GrowthIntervalMonths int `json:"growth_interval_months" yaml:"growth_interval_months" toml:"growth_interval_months"`
	GrowthIncrement      int `json:"growth_increment" yaml:"growth_increment" toml:"growth_increment"`

	ReorderRate        float64 `json:"reorder_rate" yaml:"reorder_rate" toml:"reorder_rate"`
	ReorderCycleMonths int     `json:"reorder_cycle_months" yaml:"reorder_cycle_months" toml:"reorder_cycle_months"`

	LicenseOneGrossPerUnit  float64 `json:"license_one_gross_per_unit" yaml:"license_one_gross_per_unit" toml:"license_one_gross_per_unit"`
	PostcardCostPerUnit     float64 `json:"postcard_cost_per_unit" yaml:"postcard_cost_per_unit" toml:"postcard_cost_per_unit"`
	GraphicShareCostPerUnit float64 `json:"graphic_share_cost_per_unit" yaml:"graphic_share_cost_per_unit" toml:"graphic_share_cost_per_unit"`
	LicenseTwoFeePerUnit    float64 `json:"license_two_fee_per_unit" yaml:"license_two_fee_per_unit" toml:"license_two_fee_per_unit"`
	LicenseTwoThreshold     int     `json:"license_two_threshold" yaml:"license_two_threshold" toml:"license_two_threshold"`
}

// DefaultParameters retorna o caso de referência: dez anos a partir de julho de 2025,
// quatro novos parceiros por mês crescendo dois a cada ano, metade recomprando todo mês.
func DefaultParameters() Parameters {
	return Parameters{
		HorizonMonths:           120,
		StartYear:               2025,
		StartMonth:              7,
		UnitCost:                6.9,
		UnitSellPrice:           12.9,
		SalesCostPerUnit:        0,
		LogisticsCostPerUnit:    0,
		UnitsPerDisplay:         32,
		BasePartnersPerMonth:    4,
		GrowthIntervalMonths:    12,
		GrowthIncrement:         2,
		ReorderRate:             50,
		ReorderCycleMonths:      1,
		LicenseOneGrossPerUnit:  1.2,
		PostcardCostPerUnit:     0.1,
		GraphicShareCostPerUnit: 0.2,
		LicenseTwoFeePerUnit:    1.3,
		LicenseTwoThreshold:     3,
	}
}

// Os valores por unidade abaixo são derivados sob demanda e nunca guardados junto
// dos parâmetros de que dependem.

// MarginPerUnit é a margem bruta de uma unidade.
func (p Parameters) MarginPerUnit() decimal.Decimal {
	return dec(p.UnitSellPrice).Sub(dec(p.UnitCost))
}

// ContributionPerUnit é a margem de uma unidade após vendas e logística (margem II).
func (p Parameters) ContributionPerUnit() decimal.Decimal {
	return p.MarginPerUnit().Sub(dec(p.SalesCostPerUnit)).Sub(dec(p.LogisticsCostPerUnit))
}

// NetLicenseOneRate é a licença 1 por unidade após cartão postal e parte gráfica,
// nunca abaixo de zero.
func (p Parameters) NetLicenseOneRate() decimal.Decimal {
	net := dec(p.LicenseOneGrossPerUnit).Sub(dec(p.PostcardCostPerUnit)).Sub(dec(p.GraphicShareCostPerUnit))
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// ProfitPerUnit é a contribuição por unidade menos as duas licenças brutas.
func (p Parameters) ProfitPerUnit() decimal.Decimal {
	return p.ContributionPerUnit().Sub(dec(p.LicenseOneGrossPerUnit)).Sub(dec(p.LicenseTwoFeePerUnit))
}

// ReorderShare é a taxa de recompra como fração.
func (p Parameters) ReorderShare() decimal.Decimal {
	return dec(p.ReorderRate).Div(decimal.NewFromInt(100))
}

// ReordersEnabled informa se as coortes fazem recompras.
func (p Parameters) ReordersEnabled() bool {
	return p.ReorderCycleMonths > 0
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

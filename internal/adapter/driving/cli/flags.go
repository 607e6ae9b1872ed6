package cli

import (
	"fmt"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags de parâmetros do cenário. Os valores padrão exibidos são os do cenário de referência.
func addParameterFlags(cmd *cobra.Command) {
	d := entity.DefaultParameters()
	f := cmd.Flags()

	f.Int("horizon-months", d.HorizonMonths, "Number of projected months")
	f.String("start-date", fmt.Sprintf("%04d-%02d", d.StartYear, d.StartMonth), "First projected month (YYYY-MM)")

	f.Float64("unit-cost", d.UnitCost, "Purchase cost of one unit")
	f.Float64("unit-sell-price", d.UnitSellPrice, "Sell price of one unit")
	f.Float64("sales-cost-per-unit", d.SalesCostPerUnit, "Sales cost per unit")
	f.Float64("logistics-cost-per-unit", d.LogisticsCostPerUnit, "Logistics cost per unit")
	f.Int("units-per-display", d.UnitsPerDisplay, "Units in one display (initial order size)")

	f.Int("base-partners", d.BasePartnersPerMonth, "New partners acquired per month before growth")
	f.Int("growth-interval", d.GrowthIntervalMonths, "Months between growth steps (0 disables growth)")
	f.Int("growth-increment", d.GrowthIncrement, "Extra new partners per month added at each growth step")

	f.Float64("reorder-rate", d.ReorderRate, "Percentage of each cohort that reorders")
	f.Int("reorder-cycle", d.ReorderCycleMonths, "Months between reorders (0 disables reorders)")

	f.Float64("license-one-gross", d.LicenseOneGrossPerUnit, "Gross license 1 fee per unit")
	f.Float64("postcard-cost", d.PostcardCostPerUnit, "Postcard cost deducted from license 1, per unit")
	f.Float64("graphic-share-cost", d.GraphicShareCostPerUnit, "Graphic share deducted from license 1, per unit")
	f.Float64("license-two-fee", d.LicenseTwoFeePerUnit, "License 2 fee per unit")
	f.Int("license-two-threshold", d.LicenseTwoThreshold, "License 2 applies once cumulative partners exceed this")
}

// parameterOverrides devolve apenas as flags de parâmetro que o usuário definiu.
func parameterOverrides(flags *pflag.FlagSet) (types.ScenarioConfig, error) {
	var o types.ScenarioConfig

	ints := map[string]**int{
		"horizon-months":        &o.HorizonMonths,
		"units-per-display":     &o.UnitsPerDisplay,
		"base-partners":         &o.BasePartnersPerMonth,
		"growth-interval":       &o.GrowthIntervalMonths,
		"growth-increment":      &o.GrowthIncrement,
		"reorder-cycle":         &o.ReorderCycleMonths,
		"license-two-threshold": &o.LicenseTwoThreshold,
	}
	for name, dst := range ints {
		if !flags.Changed(name) {
			continue
		}
		v, e := flags.GetInt(name)
		if e != nil {
			return o, e
		}
		*dst = &v
	}

	floats := map[string]**float64{
		"unit-cost":               &o.UnitCost,
		"unit-sell-price":         &o.UnitSellPrice,
		"sales-cost-per-unit":     &o.SalesCostPerUnit,
		"logistics-cost-per-unit": &o.LogisticsCostPerUnit,
		"reorder-rate":            &o.ReorderRate,
		"license-one-gross":       &o.LicenseOneGrossPerUnit,
		"postcard-cost":           &o.PostcardCostPerUnit,
		"graphic-share-cost":      &o.GraphicShareCostPerUnit,
		"license-two-fee":         &o.LicenseTwoFeePerUnit,
	}
	for name, dst := range floats {
		if !flags.Changed(name) {
			continue
		}
		v, e := flags.GetFloat64(name)
		if e != nil {
			return o, e
		}
		*dst = &v
	}

	if flags.Changed("start-date") {
		v, e := flags.GetString("start-date")
		if e != nil {
			return o, e
		}
		o.StartDate = &v
	}

	return o, nil
}

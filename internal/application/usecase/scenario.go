package usecase

import (
	"fmt"
	"time"

	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
)

const startDateLayout = "2006-01"

// ApplyScenario copia para p todos os campos definidos em s. Campos nil mantêm o valor atual.
func ApplyScenario(p *entity.Parameters, s types.ScenarioConfig) error {
	if s.StartDate != nil {
		start, err := time.Parse(startDateLayout, *s.StartDate)
		if err != nil {
			return fmt.Errorf("%w: %q", types.ErrInvalidStartDate, *s.StartDate)
		}
		p.StartYear = start.Year()
		p.StartMonth = int(start.Month())
	}

	setInt(&p.HorizonMonths, s.HorizonMonths)
	setFloat(&p.UnitCost, s.UnitCost)
	setFloat(&p.UnitSellPrice, s.UnitSellPrice)
	setFloat(&p.SalesCostPerUnit, s.SalesCostPerUnit)
	setFloat(&p.LogisticsCostPerUnit, s.LogisticsCostPerUnit)
	setInt(&p.UnitsPerDisplay, s.UnitsPerDisplay)
	setInt(&p.BasePartnersPerMonth, s.BasePartnersPerMonth)
	setInt(&p.GrowthIntervalMonths, s.GrowthIntervalMonths)
	setInt(&p.GrowthIncrement, s.GrowthIncrement)
	setFloat(&p.ReorderRate, s.ReorderRate)
	setInt(&p.ReorderCycleMonths, s.ReorderCycleMonths)
	setFloat(&p.LicenseOneGrossPerUnit, s.LicenseOneGrossPerUnit)
	setFloat(&p.PostcardCostPerUnit, s.PostcardCostPerUnit)
	setFloat(&p.GraphicShareCostPerUnit, s.GraphicShareCostPerUnit)
	setFloat(&p.LicenseTwoFeePerUnit, s.LicenseTwoFeePerUnit)
	setInt(&p.LicenseTwoThreshold, s.LicenseTwoThreshold)

	return nil
}

// ScenarioFromParameters faz o caminho inverso: todos os campos preenchidos.
func ScenarioFromParameters(p entity.Parameters) types.ScenarioConfig {
	start := fmt.Sprintf("%04d-%02d", p.StartYear, p.StartMonth)
	return types.ScenarioConfig{
		HorizonMonths:           &p.HorizonMonths,
		StartDate:               &start,
		UnitCost:                &p.UnitCost,
		UnitSellPrice:           &p.UnitSellPrice,
		SalesCostPerUnit:        &p.SalesCostPerUnit,
		LogisticsCostPerUnit:    &p.LogisticsCostPerUnit,
		UnitsPerDisplay:         &p.UnitsPerDisplay,
		BasePartnersPerMonth:    &p.BasePartnersPerMonth,
		GrowthIntervalMonths:    &p.GrowthIntervalMonths,
		GrowthIncrement:         &p.GrowthIncrement,
		ReorderRate:             &p.ReorderRate,
		ReorderCycleMonths:      &p.ReorderCycleMonths,
		LicenseOneGrossPerUnit:  &p.LicenseOneGrossPerUnit,
		PostcardCostPerUnit:     &p.PostcardCostPerUnit,
		GraphicShareCostPerUnit: &p.GraphicShareCostPerUnit,
		LicenseTwoFeePerUnit:    &p.LicenseTwoFeePerUnit,
		LicenseTwoThreshold:     &p.LicenseTwoThreshold,
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

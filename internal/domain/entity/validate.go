package entity

import (
	"fmt"

	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
)

// MaxHorizonMonths limita o horizonte a cem anos; acima disso as séries seriam
// alocadas sem utilidade para o modelo.
const MaxHorizonMonths = 1200

// Validate verifica apenas o necessário para dimensionar as séries e rotular os meses.
// Plausibilidade econômica (preços negativos, crescimento negativo) fica com quem chama.
func (p Parameters) Validate() error {
	if p.HorizonMonths < 0 {
		return fmt.Errorf("%w: %d", types.ErrInvalidHorizon, p.HorizonMonths)
	}
	if p.HorizonMonths > MaxHorizonMonths {
		return fmt.Errorf("%w: %d > %d", types.ErrHorizonTooLong, p.HorizonMonths, MaxHorizonMonths)
	}
	if p.StartMonth < 1 || p.StartMonth > 12 {
		return fmt.Errorf("%w: %d", types.ErrInvalidStartMonth, p.StartMonth)
	}
	if p.UnitsPerDisplay <= 0 {
		return fmt.Errorf("%w: %d", types.ErrInvalidUnitsPerDisplay, p.UnitsPerDisplay)
	}
	if p.GrowthIntervalMonths < 0 {
		return fmt.Errorf("%w: growth interval %d", types.ErrNegativeInterval, p.GrowthIntervalMonths)
	}
	if p.ReorderCycleMonths < 0 {
		return fmt.Errorf("%w: reorder cycle %d", types.ErrNegativeInterval, p.ReorderCycleMonths)
	}
	return nil
}

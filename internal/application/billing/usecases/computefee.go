package usecases

import (
	"context"

	"github.com/prato-inc/prato/internal/application/billing/dto"
	"github.com/prato-inc/prato/internal/domain/billing"
	"github.com/prato-inc/prato/internal/shared/constants"
	"github.com/prato-inc/prato/internal/shared/logger"
)

type ComputeFeeCommand struct {
	TenantID    uint
	PartnerID   *uint
	PlanID      *uint
	CategoryID  *uint
	AmountCents int64
}

// ComputeFeeUseCase resolves the route for a transaction and prices it.
type ComputeFeeUseCase struct {
	resolveRoute *ResolveRouteUseCase
	logger       logger.Interface
}

func NewComputeFeeUseCase(
	resolveRoute *ResolveRouteUseCase,
	logger logger.Interface,
) *ComputeFeeUseCase {
	return &ComputeFeeUseCase{
		resolveRoute: resolveRoute,
		logger:       logger,
	}
}

func (uc *ComputeFeeUseCase) Execute(
	ctx context.Context,
	cmd ComputeFeeCommand,
) (*dto.FeeBreakdownDTO, error) {
	if cmd.AmountCents < 0 {
		return nil, billing.ErrInvalidAmount
	}

	resolution, err := uc.resolveRoute.Execute(ctx, ResolveRouteCommand{
		TenantID:   cmd.TenantID,
		PartnerID:  cmd.PartnerID,
		PlanID:     cmd.PlanID,
		CategoryID: cmd.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	schedule, err := scheduleFromDTO(resolution.FeeSchedule)
	if err != nil {
		uc.logger.Errorw("resolved schedule failed validation", "error", err, "rule_sid", resolution.RuleSID)
		return nil, err
	}

	breakdown, err := billing.ComputeFee(schedule, cmd.AmountCents)
	if err != nil {
		return nil, err
	}

	return dto.ToFeeBreakdownDTO(cmd.AmountCents, constants.DefaultCurrency, breakdown), nil
}

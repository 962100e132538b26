package usecases

import (
	"github.com/prato-inc/prato/internal/application/billing/dto"
	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
)

func scheduleFromDTO(d *dto.FeeScheduleDTO) (vo.FeeSchedule, error) {
	return vo.NewFeeSchedule(
		d.PercentRate,
		d.FixedFeeCents,
		d.MinFeeCents,
		d.MaxFeeCents,
		d.IsSubsidized,
		d.SubsidyPercent,
	)
}

package domain

import (
	"time"

	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

type TargetRecord struct {
	Date        time.Time `json:"date"`
	DailyTarget float64   `json:"daily_target"`
}

type TargetPeriod string

const (
	TargetPeriodLastWeek TargetPeriod = "last_week"
	TargetPeriodDaily    TargetPeriod = "daily"
	TargetPeriodWeek     TargetPeriod = "week"
)

// TargetPerformance compares Amazon revenue against the summed daily targets.
type TargetPerformance struct {
	Period          TargetPeriod `json:"period"`
	StartDate       Day          `json:"start_date"`
	EndDate         Day          `json:"end_date"`
	Label           string       `json:"label"`
	Target          float64      `json:"target"`
	Actual          float64      `json:"actual"`
	Variance        float64      `json:"variance"`
	VariancePercent float64      `json:"variance_percent"`
	OnTarget        bool         `json:"on_target"`
}

// CalculateVariance returns actual minus target and its percentage of target.
// A zero target yields 0, 0.
func CalculateVariance(actual, target float64) (amount, percent float64) {
	if target == 0 {
		return 0, 0
	}
	amount = actual - target
	return amount, amount / target * 100
}

func NewTargetPerformance(period TargetPeriod, start, end time.Time, label string, target, actual float64) *TargetPerformance {
	amount, percent := CalculateVariance(actual, target)
	return &TargetPerformance{
		Period:          period,
		StartDate:       *NewDay(start),
		EndDate:         *NewDay(end),
		Label:           label,
		Target:          utils.RoundWithTwoDecimalPlace(target),
		Actual:          utils.RoundWithTwoDecimalPlace(actual),
		Variance:        utils.RoundWithTwoDecimalPlace(amount),
		VariancePercent: utils.RoundWithTwoDecimalPlace(percent),
		OnTarget:        actual >= target,
	}
}

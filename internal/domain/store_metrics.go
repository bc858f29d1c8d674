package domain

import "time"

const (
	MinPeriodYear = 2000
	MaxPeriodYear = 3000
)

// StoreMetrics guarda o orçamento acumulado (PAF) informado manualmente para a loja
// e os percentuais derivados dele no período
type StoreMetrics struct {
	ID            int64     `json:"id"`
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	Paf           float64   `json:"paf"`
	PercentagePaf float64   `json:"percentage_paf"`
	PercentagePr  float64   `json:"percentage_pr"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Recalculate recalcula os percentuais a partir dos totais do período
func (m *StoreMetrics) Recalculate(totalSales, totalGoal float64) {
	m.PercentagePaf = SafePercentage(totalSales, totalGoal)
	m.PercentagePr = SafePercentage(totalSales, m.Paf)
}

type StoreMetricsRequest struct {
	Year  *int     `json:"year" validate:"required,gt=0"`
	Month *int     `json:"month" validate:"required,gt=0"`
	Paf   *float64 `json:"paf" validate:"required,gt=0"`
}

// ValidatePeriod valida ano e mês informados
func ValidatePeriod(year, month *int) error {
	if year == nil || month == nil {
		return NewBusinessError("ano e mês são obrigatórios")
	}
	if *month < 1 || *month > 12 {
		return NewBusinessError("o mês deve estar entre 1 e 12")
	}
	if *year < MinPeriodYear || *year > MaxPeriodYear {
		return NewBusinessError("o ano deve estar entre 2000 e 3000")
	}
	return nil
}

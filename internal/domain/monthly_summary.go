package domain

import "time"

// MonthlySummary acumula o total vendido por um assessor no período.
// Goal é um espelho da meta cadastrada; GoalStale indica que o espelho
// ainda não pôde ser preenchido a partir das metas.
type MonthlySummary struct {
	ID              int64     `json:"id"`
	AdviserID       int64     `json:"adviser_id"`
	Year            int       `json:"year"`
	Month           int       `json:"month"`
	TotalSales      float64   `json:"total_sales"`
	Goal            float64   `json:"goal"`
	GoalStale       bool      `json:"goal_stale"`
	TotalOverridden bool      `json:"total_overridden"`
	Version         int64     `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SummaryLookup é o resultado explícito da busca de um resumo: encontrado ou ausente
type SummaryLookup struct {
	Found   bool
	Summary *MonthlySummary
}

func NewSummaryLookup(summary *MonthlySummary) SummaryLookup {
	return SummaryLookup{Found: summary != nil, Summary: summary}
}

// NewMonthlySummary cria o resumo zerado de um período; a meta é copiada depois
func NewMonthlySummary(adviserID int64, year, month int) *MonthlySummary {
	return &MonthlySummary{
		AdviserID: adviserID,
		Year:      year,
		Month:     month,
		GoalStale: true,
	}
}

// ApplyGoal atualiza o espelho da meta
func (s *MonthlySummary) ApplyGoal(goal *Goal) {
	if goal == nil {
		s.GoalStale = true
		return
	}
	s.Goal = goal.GoalValue
	s.GoalStale = false
}

// NeedsGoalSync diz se o espelho deve ser sobrescrito pela meta informada
func (s *MonthlySummary) NeedsGoalSync(goalValue float64) bool {
	return s.Goal == 0 || s.Goal != goalValue
}

type OverrideTotalRequest struct {
	Year       int      `json:"year" validate:"required,gte=2000,lte=3000"`
	Month      int      `json:"month" validate:"required,gte=1,lte=12"`
	TotalSales *float64 `json:"total_sales" validate:"required"`
}

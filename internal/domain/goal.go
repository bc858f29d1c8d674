package domain

import "time"

// Goal é a meta de vendas de um assessor para um período (ano, mês)
type Goal struct {
	ID        int64     `json:"id"`
	AdviserID int64     `json:"adviser_id"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	GoalValue float64   `json:"goal_value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GoalRequest struct {
	Year      int      `json:"year" validate:"required,gte=2000,lte=3000"`
	Month     int      `json:"month" validate:"required,gte=1,lte=12"`
	GoalValue *float64 `json:"goal_value" validate:"required,gt=0"`
}

package domain

import (
	"strings"
	"time"
)

type Adviser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Lastname  string    `json:"lastname"`
	Active    bool      `json:"active"`
	UPT       *float64  `json:"upt"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName retorna o nome de exibição do assessor
func (a *Adviser) FullName() string {
	return strings.TrimSpace(a.Name + " " + a.Lastname)
}

// UPTOrZero trata UPT ausente como zero para efeito de ranking
func (a *Adviser) UPTOrZero() float64 {
	if a == nil || a.UPT == nil {
		return 0
	}
	return *a.UPT
}

type CreateAdviserRequest struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Lastname  string   `json:"lastname" validate:"max=100"`
	Active    *bool    `json:"active"`
	UPT       *float64 `json:"upt" validate:"omitempty,gte=0"`
	GoalValue *float64 `json:"goal_value" validate:"omitempty,gt=0"`
}

type UpdateAdviserRequest struct {
	ID       int64    `json:"-"`
	Name     *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Lastname *string  `json:"lastname" validate:"omitempty,max=100"`
	Active   *bool    `json:"active"`
	UPT      *float64 `json:"upt" validate:"omitempty,gte=0"`
}

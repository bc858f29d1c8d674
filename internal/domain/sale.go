package domain

import "time"

type Sale struct {
	ID        int64     `json:"id"`
	AdviserID int64     `json:"adviser_id"`
	Code      string    `json:"code"`
	Amount    float64   `json:"amount"`
	SaleDate  time.Time `json:"sale_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SaleRequest struct {
	AdviserID int64   `json:"adviser_id" validate:"required,gt=0"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	SaleDate  string  `json:"sale_date" validate:"omitempty,datetime=2006-01-02"`
}

// WeekSale é a resposta imediata do registro de uma venda
type WeekSale struct {
	Week  int     `json:"week"`
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// SumAmounts soma os valores das vendas, zero quando não há vendas
func SumAmounts(sales []*Sale) float64 {
	total := 0.0
	for _, sale := range sales {
		total += sale.Amount
	}
	return total
}

package domain

import (
	"math"
	"strconv"
)

// AchievementTolerance é a diferença abaixo da qual dois percentuais são considerados empatados
const AchievementTolerance = 0.01

// Percentage é um percentual que pode ser indefinido (divisão de venda positiva por meta zero).
// Indefinido é serializado como null.
type Percentage float64

func (p Percentage) Defined() bool {
	f := float64(p)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (p Percentage) MarshalJSON() ([]byte, error) {
	if !p.Defined() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(p), 'f', -1, 64), nil
}

// GrowthPercent calcula o crescimento da semana atual sobre a anterior.
// Sem vendas na semana anterior o crescimento é 100 se houve venda, senão 0.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// Achievement calcula o atingimento da meta. Só a venda é verificada:
// meta zero com venda positiva resulta em +Inf.
func Achievement(sales, goal float64) Percentage {
	if sales > 0 {
		return Percentage(sales / goal * 100)
	}
	return 0
}

// SafePercentage retorna zero quando o denominador não é positivo
func SafePercentage(value, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return value / base * 100
}

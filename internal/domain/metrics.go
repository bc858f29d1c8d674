package domain

import "math"

type WeeklyComparison struct {
	AdviserID         int64   `json:"adviser_id"`
	AdviserName       string  `json:"adviser_name"`
	WeekNumber        int     `json:"week_number"`
	Year              int     `json:"year"`
	Month             int     `json:"month"`
	WeekStart         string  `json:"week_start"`
	WeekEnd           string  `json:"week_end"`
	CurrentWeekSales  float64 `json:"current_week_sales"`
	PreviousWeekSales float64 `json:"previous_week_sales"`
	GrowthPercentage  float64 `json:"growth_percentage"`
}

type WeekTotalRequest struct {
	Total *float64 `json:"total"`
}

// AdviserPerformance é o candidato do ranking montado a partir de um resumo mensal
type AdviserPerformance struct {
	AdviserID   int64      `json:"adviser_id"`
	Name        string     `json:"name"`
	TotalSales  float64    `json:"total_sales"`
	Goal        float64    `json:"goal"`
	Achievement Percentage `json:"achievement"`
	UPT         float64    `json:"upt"`
}

type DashboardMetrics struct {
	TotalSales        float64             `json:"total_sales"`
	TotalGoal         float64             `json:"total_goal"`
	ActiveAdvisers    int                 `json:"active_advisers"`
	GoalAchievement   Percentage          `json:"goal_achievement"`
	AverageSales      float64             `json:"average_sales"`
	BestByAchievement *AdviserPerformance `json:"best_by_achievement"`
	BestByUPT         *AdviserPerformance `json:"best_by_upt"`
}

type AdviserMetrics struct {
	AdviserID       int64      `json:"adviser_id"`
	Name            string     `json:"name"`
	TotalSales      float64    `json:"total_sales"`
	TotalGoal       float64    `json:"total_goal"`
	GoalAchievement Percentage `json:"goal_achievement"`
}

// CompareByAchievement ordena por atingimento; diferenças abaixo da tolerância
// são desempatadas pelo UPT
func CompareByAchievement(a, b *AdviserPerformance) int {
	if math.Abs(float64(a.Achievement)-float64(b.Achievement)) < AchievementTolerance {
		return compareFloat(a.UPT, b.UPT)
	}
	return compareFloat(float64(a.Achievement), float64(b.Achievement))
}

// CompareByUPT ordena por UPT; empate é resolvido pelo atingimento
func CompareByUPT(a, b *AdviserPerformance) int {
	if a.UPT == b.UPT {
		return compareFloat(float64(a.Achievement), float64(b.Achievement))
	}
	return compareFloat(a.UPT, b.UPT)
}

// BestBy retorna o maior candidato segundo cmp. Em empate total permanece o primeiro.
func BestBy(candidates []*AdviserPerformance, cmp func(a, b *AdviserPerformance) int) *AdviserPerformance {
	var best *AdviserPerformance
	for _, candidate := range candidates {
		if best == nil || cmp(best, candidate) < 0 {
			best = candidate
		}
	}
	return best
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

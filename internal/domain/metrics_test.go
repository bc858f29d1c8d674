package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestBy(t *testing.T) {
	tests := []struct {
		name       string
		candidates []*AdviserPerformance
		cmp        func(a, b *AdviserPerformance) int
		expectedID int64
	}{
		{
			name: "Maior atingimento vence",
			candidates: []*AdviserPerformance{
				{AdviserID: 1, Achievement: 80, UPT: 3},
				{AdviserID: 2, Achievement: 120, UPT: 1},
			},
			cmp:        CompareByAchievement,
			expectedID: 2,
		},
		{
			name: "Atingimento dentro da tolerância desempata por UPT",
			candidates: []*AdviserPerformance{
				{AdviserID: 1, Achievement: 100.005, UPT: 1.5},
				{AdviserID: 2, Achievement: 100, UPT: 2.5},
			},
			cmp:        CompareByAchievement,
			expectedID: 2,
		},
		{
			name: "Empate total mantém o primeiro candidato",
			candidates: []*AdviserPerformance{
				{AdviserID: 1, Achievement: 90, UPT: 2},
				{AdviserID: 2, Achievement: 90, UPT: 2},
			},
			cmp:        CompareByAchievement,
			expectedID: 1,
		},
		{
			name: "Meta zero com venda positiva supera qualquer atingimento finito",
			candidates: []*AdviserPerformance{
				{AdviserID: 1, Achievement: 500, UPT: 9},
				{AdviserID: 2, Achievement: Percentage(math.Inf(1)), UPT: 0},
			},
			cmp:        CompareByAchievement,
			expectedID: 2,
		},
		{
			name: "Maior UPT vence",
			candidates: []*AdviserPerformance{
				{AdviserID: 1, Achievement: 200, UPT: 1.2},
				{AdviserID: 2, Achievement: 10, UPT: 3.4},
			},
			cmp:        CompareByUPT,
			expectedID: 2,
		},
		{
			name: "UPT igual desempata por atingimento",
			candidates: []*AdviserPerformance{
				{AdviserID: 1, Achievement: 70, UPT: 2},
				{AdviserID: 2, Achievement: 95, UPT: 2},
			},
			cmp:        CompareByUPT,
			expectedID: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best := BestBy(tt.candidates, tt.cmp)
			if assert.NotNil(t, best) {
				assert.Equal(t, tt.expectedID, best.AdviserID)
			}
		})
	}
}

func TestBestBy_Empty(t *testing.T) {
	assert.Nil(t, BestBy(nil, CompareByAchievement))
	assert.Nil(t, BestBy([]*AdviserPerformance{}, CompareByUPT))
}

func TestMonthlySummary_GoalMirror(t *testing.T) {
	summary := NewMonthlySummary(7, 2024, 3)
	assert.True(t, summary.GoalStale)
	assert.True(t, summary.NeedsGoalSync(0))

	summary.ApplyGoal(&Goal{GoalValue: 500})
	assert.False(t, summary.GoalStale)
	assert.Equal(t, 500.0, summary.Goal)
	assert.False(t, summary.NeedsGoalSync(500))
	assert.True(t, summary.NeedsGoalSync(600))

	summary.ApplyGoal(nil)
	assert.True(t, summary.GoalStale)
	assert.Equal(t, 500.0, summary.Goal)
}

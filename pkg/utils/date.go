package utils

import "time"

// ParseDateOr interpreta uma data AAAA-MM-DD; vazia devolve fallback
func ParseDateOr(dateStr string, fallback time.Time) (time.Time, error) {
	if dateStr == "" {
		return fallback, nil
	}

	return time.Parse(time.DateOnly, dateStr)
}

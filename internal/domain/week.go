package domain

import "time"

const daysInWeek = 7

// WeekWindow é o intervalo fechado de segunda a domingo
type WeekWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DateOnly descarta o horário, mantendo apenas o dia do calendário
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MondayOnOrBefore retorna a segunda-feira da semana da data (a própria data se já for segunda)
func MondayOnOrBefore(t time.Time) time.Time {
	d := DateOnly(t)
	offset := (int(d.Weekday()) + 6) % daysInWeek
	return d.AddDate(0, 0, -offset)
}

func WeekOf(anchor time.Time) WeekWindow {
	start := MondayOnOrBefore(anchor)
	return WeekWindow{Start: start, End: start.AddDate(0, 0, daysInWeek-1)}
}

func (w WeekWindow) Previous() WeekWindow {
	return WeekWindow{Start: w.Start.AddDate(0, 0, -daysInWeek), End: w.End.AddDate(0, 0, -daysInWeek)}
}

func (w WeekWindow) Next() WeekWindow {
	return WeekWindow{Start: w.Start.AddDate(0, 0, daysInWeek), End: w.End.AddDate(0, 0, daysInWeek)}
}

func (w WeekWindow) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// ISOWeek retorna o número da semana ISO da segunda-feira da janela
func (w WeekWindow) ISOWeek() int {
	_, week := w.Start.ISOWeek()
	return week
}

// FirstDayOfMonth e LastDayOfMonth delimitam o período (ano, mês)
func FirstDayOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

func LastDayOfMonth(year, month int) time.Time {
	return FirstDayOfMonth(year, month).AddDate(0, 1, -1)
}

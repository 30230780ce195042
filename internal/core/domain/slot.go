package domain

import "time"

// Slot — вычисленный свободный интервал для записи.
// Не персистится, пересчитывается заново на каждый запрос.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

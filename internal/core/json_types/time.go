package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// WallClock — время суток без даты, формат HH:MM:SS или HH:MM.
type WallClock struct {
	Time time.Time
}

func (t *WallClock) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("failed to parse time: expected string")
	}

	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsedTime, err := time.Parse("15:04:05", str)
	if err != nil {
		// Пробуем без секунд
		parsedTime, err = time.Parse("15:04", str)
		if err != nil {
			return fmt.Errorf("failed to parse time: %v", err)
		}
	}

	*t = WallClock{Time: parsedTime}
	return nil
}

func (t WallClock) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format("15:04:05"))
}

// MinutesOfDay возвращает смещение от начала суток в минутах.
func (t WallClock) MinutesOfDay() int {
	return t.Time.Hour()*60 + t.Time.Minute()
}

// Before сравнивает только время суток, дата игнорируется.
func (t WallClock) Before(other WallClock) bool {
	if t.Time.Hour() != other.Time.Hour() {
		return t.Time.Hour() < other.Time.Hour()
	}
	if t.Time.Minute() != other.Time.Minute() {
		return t.Time.Minute() < other.Time.Minute()
	}
	return t.Time.Second() < other.Time.Second()
}

package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date — календарная дата без времени, формат YYYY-MM-DD.
// Всегда интерпретируется как полночь UTC.
type Date struct {
	Date time.Time
}

func (t *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("failed to parse date: expected string")
	}

	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])

	parsedDate, err := time.ParseInLocation("2006-01-02", str, time.UTC)
	if err != nil {
		return fmt.Errorf("failed to parse date: %v", err)
	}

	*t = Date{Date: parsedDate}
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format("2006-01-02"))
}

func (t Date) IsZero() bool {
	return t.Date.IsZero()
}

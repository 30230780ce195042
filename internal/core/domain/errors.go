package domain

import (
	"fmt"
	"strings"
)

// ValidationError перечисляет все невалидные поля запроса.
// Единственный локально-восстановимый класс ошибок: мапится в клиентский
// ответ и никогда не ретраится.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Add(field, reason string) {
	e.Violations = append(e.Violations, fmt.Sprintf("%s %s", field, reason))
}

func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

func (e *ValidationError) Error() string {
	return "invalid request: " + strings.Join(e.Violations, "; ")
}

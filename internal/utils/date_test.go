package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDayUTC(t *testing.T) {
	moment := time.Date(2026, 9, 7, 15, 42, 13, 500, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), StartOfDayUTC(moment))
}

func TestEndOfDayUTC(t *testing.T) {
	moment := time.Date(2026, 9, 7, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 7, 23, 59, 59, 0, time.UTC), EndOfDayUTC(moment))
}

func TestAnchorWallClock(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	wallClock := time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC)

	anchored := AnchorWallClock(date, wallClock)
	assert.Equal(t, time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC), anchored)
}

func TestAnchorWallClock_NonUTCDate(t *testing.T) {
	// Дата в другой таймзоне приводится к календарю UTC
	moscow := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2026, 9, 8, 1, 0, 0, 0, moscow) // 2026-09-07T22:00Z
	wallClock := time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC)

	anchored := AnchorWallClock(date, wallClock)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), anchored)
}

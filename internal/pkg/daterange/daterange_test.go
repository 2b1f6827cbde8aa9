package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonth_Bounds(t *testing.T) {
	start, end := Month(2025, 5)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 5, 31, 23, 59, 59, 999000000, time.UTC), end)
}

func TestMonth_February(t *testing.T) {
	_, end := Month(2024, 2)
	assert.Equal(t, 29, end.Day())

	_, end = Month(2025, 2)
	assert.Equal(t, 28, end.Day())
}

func TestMonth_December(t *testing.T) {
	start, end := Month(2025, 12)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 999000000, time.UTC), end)
}

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2025, 7, 15, 10, 30, 0, 0, time.FixedZone("CET", 3600))
	start, end := CurrentMonth(now)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 7, 31, 23, 59, 59, 999000000, time.UTC), end)
}

func TestYear_Bounds(t *testing.T) {
	start, end := Year(2024)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 999000000, time.UTC), end)
}

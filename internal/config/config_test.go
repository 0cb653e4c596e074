package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"09:00", "09:30"}, splitCSV("09:00,09:30"))
	assert.Equal(t, []string{"09:00", "09:30"}, splitCSV(" 09:00 , 09:30 "))
	assert.Equal(t, []string{"09:00"}, splitCSV("09:00,,"))
	assert.Empty(t, splitCSV(""))
}

func TestDefaultSlotGridSkipsLunchBreak(t *testing.T) {
	slots := splitCSV(defaultSlotTimes)

	assert.NotContains(t, slots, "12:30")
	assert.Contains(t, slots, "12:00")
	assert.Contains(t, slots, "13:00")
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "18:30", slots[len(slots)-1])
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("TIME_ZONE", "")
	t.Setenv("PLATFORM_FEE", "")
	t.Setenv("BOOKING_RATE_LIMIT", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "America/Sao_Paulo", cfg.TimeZone)
	assert.Equal(t, 5.00, cfg.PlatformFee)
	assert.Equal(t, 5, cfg.BookingRateLimit)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PLATFORM_FEE", "8.90")
	t.Setenv("SLOT_TIMES", "10:00,10:30")

	cfg := Load()

	assert.Equal(t, 8.90, cfg.PlatformFee)
	assert.Equal(t, []string{"10:00", "10:30"}, cfg.SlotTimes)
}

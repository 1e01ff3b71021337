package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 8*time.Hour, ParseDuration("8h", time.Hour))
	assert.Equal(t, 90*time.Minute, ParseDuration("1h30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("eight hours", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("-5m", time.Hour))
}

package logx

import (
	"bytes"
	"testing"

	"github.com/exclusive-store/server/internal/core"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInit_ProductionWritesJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(LoggerOpts{Environment: core.Production, Output: &buf})
	t.Cleanup(func() { Init() })

	Debug().Msg("hidden")
	Info().Str("cart_id", "c-1").Msg("carousel built")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"cart_id":"c-1"`)
	assert.Contains(t, out, `"message":"carousel built"`)
}

func TestInit_LevelOverride(t *testing.T) {
	var buf bytes.Buffer
	Init(LoggerOpts{Environment: core.Development, Level: "warn", Output: &buf})
	t.Cleanup(func() { Init() })

	assert.Equal(t, zerolog.WarnLevel, log.Logger.GetLevel())
	Info().Msg("skipped")
	assert.Empty(t, buf.String())
}

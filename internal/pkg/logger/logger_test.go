package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ondulado/internal/pkg/logger"
)

func TestLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "production", "debug")

	log.Info("Ondulado criado com sucesso.", map[string]interface{}{"id": "abc", "quantidade": 50})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Ondulado criado com sucesso.", entry["message"])
	assert.Equal(t, "abc", entry["id"])
	assert.EqualValues(t, 50, entry["quantidade"])
	assert.Contains(t, entry, "time")
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "production", "warn")

	log.Debug("ignorado", nil)
	log.Info("ignorado", nil)
	assert.Zero(t, buf.Len())

	log.Warn("aviso", map[string]interface{}{"chave": "ondulados"})
	log.Error("erro", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"error":"boom"`)
}

func TestLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "production", "verboso")

	log.Debug("ignorado", nil)
	log.Info("registrado", nil)

	assert.NotContains(t, buf.String(), "ignorado")
	assert.Contains(t, buf.String(), "registrado")
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	log := logger.NewNop()
	assert.NotPanics(t, func() {
		log.Info("nada", nil)
		log.Error("nada", errors.New("x"))
	})
}

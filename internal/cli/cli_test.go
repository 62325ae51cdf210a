package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeQuac/Gratulations/internal/config"
)

func TestResolveDay(t *testing.T) {
	day, err := resolveDay("2024-05-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), day)

	_, err = resolveDay("03.05.2024")
	assert.Error(t, err)

	// Empty flag means "today".
	day, err = resolveDay("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), day, time.Minute)
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, validatePort(config.DefaultPort))
	assert.NoError(t, validatePort("8080"))

	assert.Error(t, validatePort(""))
	assert.Error(t, validatePort("0"))
	assert.Error(t, validatePort("65536"))
	assert.Error(t, validatePort("abc"))
}

func TestGetDBPath_Precedence(t *testing.T) {
	t.Setenv(config.EnvDBPath, "/tmp/env.db")

	dbPath = "/tmp/flag.db"
	t.Cleanup(func() { dbPath = "" })
	assert.Equal(t, "/tmp/flag.db", getDBPath(), "the flag wins over the environment")

	dbPath = ""
	assert.Equal(t, "/tmp/env.db", getDBPath(), "the environment wins over the default")
}

package main

import (
	"fmt"
	"testing"

	"projtrack/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger := newLogger(&config.LogConfig{Level: "debug", Format: "text"})
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	logger = newLogger(&config.LogConfig{Level: "warn", Format: "json"})
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestOpenCache(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cache, closeCache := openCache(&config.Config{}, logger)
	assert.Nil(t, cache)
	closeCache()

	mr := miniredis.RunT(t)
	cfg := &config.Config{Redis: config.RedisConfig{
		Enabled: true, Host: mr.Host(), Port: mustPort(t, mr), KeyPrefix: "t:", NamesTTLSeconds: 60,
	}}
	cache, closeCache = openCache(cfg, logger)
	require.NotNil(t, cache)
	closeCache()

	mr.Close()
	cache, closeCache = openCache(cfg, logger)
	assert.Nil(t, cache)
	closeCache()
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	var port int
	_, err := fmt.Sscanf(mr.Port(), "%d", &port)
	require.NoError(t, err)
	return port
}

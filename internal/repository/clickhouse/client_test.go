package clickhouse

import (
	"testing"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BarkinBalci/donation-session-service/internal/config"
)

func TestNewOptions(t *testing.T) {
	cfg := &config.ClickHouse{
		Host:            "clickhouse",
		Port:            "9000",
		Database:        "sessions",
		User:            "writer",
		Password:        "secret",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 3600,
	}

	opts := newOptions(cfg)

	assert.Equal(t, []string{"clickhouse:9000"}, opts.Addr)
	assert.Equal(t, "sessions", opts.Auth.Database)
	assert.Equal(t, "writer", opts.Auth.Username)
	assert.Equal(t, "secret", opts.Auth.Password)
	assert.Equal(t, time.Hour, opts.ConnMaxLifetime)
	assert.Equal(t, 5, opts.MaxOpenConns)
	require.NotNil(t, opts.Compression)
	assert.Equal(t, clickhouse.CompressionLZ4, opts.Compression.Method)
	assert.Nil(t, opts.TLS)
}

func TestNewOptions_TLS(t *testing.T) {
	opts := newOptions(&config.ClickHouse{Host: "::1", Port: "9440", UseTLS: true})

	assert.Equal(t, []string{"[::1]:9440"}, opts.Addr)
	require.NotNil(t, opts.TLS)
	assert.False(t, opts.TLS.InsecureSkipVerify)
}

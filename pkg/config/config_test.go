package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cr3t")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "tienda", cfg.DB.DBName)
	assert.True(t, cfg.DB.Migrate)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Redis.Enabled(), "sin REDIS_ADDR la caché queda desactivada")
	assert.True(t, cfg.Report.PDFEnabled)
	assert.Equal(t, 5*time.Minute, cfg.Report.CacheTTL)
}

func TestFromViper_SinSecret_Error(t *testing.T) {
	_, err := fromViper(viper.New())
	assert.Error(t, err)
}

func TestFromViper_ValoresComoTexto(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "x")
	v.Set("HTTP_PORT", "9090")
	v.Set("DB_PORT", "no-numero")
	v.Set("REPORT_PDF_ENABLED", "false")
	v.Set("REDIS_ADDR", "localhost:6379")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5432, cfg.DB.Port, "un puerto inválido cae al valor por defecto")
	assert.False(t, cfg.Report.PDFEnabled)
	assert.True(t, cfg.Redis.Enabled())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss word", DBName: "tienda", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%20word@db:5432/tienda?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	conf, err := New()
	require.NoError(t, err)
	require.Equal(t, "info", conf.LogLevel)
	require.Equal(t, ":8080", conf.HealthAddr)
	require.Equal(t, ":8081", conf.MetricsAddr)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(logLevelEnv, "debug")
	t.Setenv(healthAddrEnv, ":9090")
	t.Setenv(metricsAddrEnv, ":9091")

	conf, err := New()
	require.NoError(t, err)
	require.Equal(t, "debug", conf.LogLevel)
	require.Equal(t, ":9090", conf.HealthAddr)
	require.Equal(t, ":9091", conf.MetricsAddr)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		conf    Config
		wantErr string
	}{
		{
			name: "valid",
			conf: Config{LogLevel: "warn", HealthAddr: ":8080", MetricsAddr: ":8081"},
		},
		{
			name:    "bad log level",
			conf:    Config{LogLevel: "verbose", HealthAddr: ":8080", MetricsAddr: ":8081"},
			wantErr: "invalid log level",
		},
		{
			name:    "missing health addr",
			conf:    Config{LogLevel: "info", MetricsAddr: ":8081"},
			wantErr: "health address",
		},
		{
			name:    "missing metrics addr",
			conf:    Config{LogLevel: "info", HealthAddr: ":8080"},
			wantErr: "metrics address",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.conf.Validate()
			if c.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, c.wantErr)
		})
	}
}

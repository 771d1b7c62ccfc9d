package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		Port:               "3000",
		AppEnv:             "development",
		DBHost:             "localhost",
		DBUser:             "postgres",
		DBName:             "go_school",
		JWTSecret:          "secret",
		S3Region:           "us-east-1",
		ConnectRetries:     5,
		OutboxPollInterval: 3 * time.Second,
		WorkingWeekdays:    defaultWorkingWeekdays(),
		Timezone:           "UTC",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		errorString string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:        "non numeric port",
			mutate:      func(c *Config) { c.Port = "abc" },
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "port out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "missing jwt secret",
			mutate:      func(c *Config) { c.JWTSecret = "" },
			errorString: "JWT_SECRET is required",
		},
		{
			name: "short jwt secret in production",
			mutate: func(c *Config) {
				c.AppEnv = "production"
				c.JWTSecret = "short"
			},
			errorString: "at least 32 characters",
		},
		{
			name:        "half configured s3 credentials",
			mutate:      func(c *Config) { c.S3AccessKeyID = "AKIA" },
			errorString: "must be set together",
		},
		{
			name:        "no working days",
			mutate:      func(c *Config) { c.WorkingWeekdays = nil },
			errorString: "WORKING_WEEKDAYS",
		},
		{
			name:        "unknown timezone",
			mutate:      func(c *Config) { c.Timezone = "Mars/Olympus" },
			errorString: `invalid SCHOOL_TIMEZONE "Mars/Olympus"`,
		},
		{
			name:        "zero retries",
			mutate:      func(c *Config) { c.ConnectRetries = 0 },
			errorString: "invalid connect retries 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errorString == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("WORKING_WEEKDAYS", "")
		t.Setenv("OUTBOX_POLL_INTERVAL", "")
		t.Setenv("SCHOOL_TIMEZONE", "")

		cfg := Load()
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, time.UTC, cfg.Location())
		assert.Equal(t, 3*time.Second, cfg.OutboxPollInterval)
		assert.Equal(t, defaultWorkingWeekdays(), cfg.WorkingWeekdays)
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("WORKING_WEEKDAYS", "mon,tue,wed,thu,fri,sat")
		t.Setenv("OUTBOX_POLL_INTERVAL", "10s")
		t.Setenv("CONNECT_RETRIES", "2")

		cfg := Load()
		assert.Equal(t, "9090", cfg.Port)
		assert.Len(t, cfg.WorkingWeekdays, 6)
		assert.Equal(t, 10*time.Second, cfg.OutboxPollInterval)
		assert.Equal(t, 2, cfg.ConnectRetries)
	})

	t.Run("invalid values use defaults", func(t *testing.T) {
		t.Setenv("WORKING_WEEKDAYS", "funday")
		t.Setenv("OUTBOX_POLL_INTERVAL", "soon")
		t.Setenv("CONNECT_RETRIES", "many")

		cfg := Load()
		assert.Equal(t, defaultWorkingWeekdays(), cfg.WorkingWeekdays)
		assert.Equal(t, 3*time.Second, cfg.OutboxPollInterval)
		assert.Equal(t, 5, cfg.ConnectRetries)
	})
}

func TestConfig_Location(t *testing.T) {
	t.Setenv("SCHOOL_TIMEZONE", "Asia/Jakarta")

	cfg := Load()
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())

	// 23:30 UTC is already the next morning in Jakarta.
	_, offset := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC).In(cfg.Location()).Zone()
	assert.Equal(t, 7*60*60, offset)

	cfg.Timezone = "Mars/Olympus"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestParseWeekdays(t *testing.T) {
	days, err := ParseWeekdays("Monday, sat ,mon")
	assert.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Saturday}, days)

	_, err = ParseWeekdays("mon,xyz")
	assert.Error(t, err)
}

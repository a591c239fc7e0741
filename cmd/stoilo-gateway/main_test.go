package main

import (
	"os"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

// Every contractual setting must be provided; the gateway refuses to start
// with silent defaults substituted for an absent environment.
func TestConfigRequiresContractualEnv(t *testing.T) {
	var cfg = *Config
	var _, err = flags.NewParser(&cfg, flags.None).ParseArgs(nil)
	require.Error(t, err)

	var contract = map[string]string{
		"TASK_SERVICE_HOST":      "0.0.0.0",
		"TASK_SERVICE_PORT":      "9999",
		"TASK_SERVICE_POOL_SIZE": "10",
		"DB_HOST":                "db.internal",
		"DB_PORT":                "5432",
		"DB_USER":                "stoilo",
		"DB_PASSWORD":            "shmassword",
		"DB_NAME":                "stoilo",
		"VCH_PROJECT_DIR":        "/vch/project",
	}
	for key, value := range contract {
		t.Setenv(key, value)
	}

	cfg = *Config
	_, err = flags.NewParser(&cfg, flags.None).ParseArgs(nil)
	require.NoError(t, err)
	require.Equal(t, uint16(9999), cfg.TaskService.Port)
	require.Equal(t, 10, cfg.TaskService.PoolSize)
	require.Equal(t, "/vch/project", cfg.VCH.ProjectDir)

	// Dropping any one contractual variable is fatal.
	for key := range contract {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, contract[key]) // Restores the variable on cleanup.
			require.NoError(t, os.Unsetenv(key))

			var cfg = *Config
			var _, err = flags.NewParser(&cfg, flags.None).ParseArgs(nil)
			require.Error(t, err)
		})
	}
}

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"customer-service/internal/config"
	"customer-service/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubConfig(t *testing.T, env string) *config.Config {
	t.Helper()

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: env},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
		},
		JWT: config.JWTConfig{
			PrivateKey:          privateKey,
			PublicKey:           publicKey,
			Issuer:              "customer-service",
			AccessTokenDuration: time.Hour,
		},
	}

	original := loadConfig
	loadConfig = func() (*config.Config, error) { return cfg, nil }
	t.Cleanup(func() { loadConfig = original })

	return cfg
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.ElementsMatch(t, []string{"serve", "migrate", "token"}, names)
}

func TestTokenCmd_MintsValidToken(t *testing.T) {
	cfg := stubConfig(t, "development")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"token", "--subject", "cli-user"})

	require.NoError(t, root.Execute())

	claims, err := services.NewTokenService(&cfg.JWT).ValidateAccessToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "cli-user", claims.Subject)
	assert.Contains(t, errOut.String(), "expires at")
}

func TestTokenCmd_RefusedInProduction(t *testing.T) {
	stubConfig(t, "production")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"token"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "production")
}

func TestMigrateCmd_RequiresPostgres(t *testing.T) {
	stubConfig(t, "development")

	root := newRootCmd()
	root.SetArgs([]string{"migrate", "status"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER=postgres")
}

func TestCommands_PropagateConfigErrors(t *testing.T) {
	original := loadConfig
	loadConfig = func() (*config.Config, error) { return nil, errors.New("bad env") }
	t.Cleanup(func() { loadConfig = original })

	for _, args := range [][]string{{"token"}, {"migrate", "up"}, {"serve"}} {
		root := newRootCmd()
		root.SetArgs(args)

		err := root.Execute()
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "bad env")
	}
}

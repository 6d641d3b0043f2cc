package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"portfolio-contact-backend/config"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/auth"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedConfig(cfg *config.Config) configLoader {
	return func() (*config.Config, error) {
		c := *cfg
		return &c, nil
	}
}

func run(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestTokenCommand(t *testing.T) {
	t.Run("Should print a verifiable admin token", func(t *testing.T) {
		out, _, err := run(newTokenCmd(fixedConfig(&config.Config{AdminJWTSecret: "s3cret"})), "--subject", "ops")
		require.NoError(t, err)

		claims, err := auth.NewIssuer("s3cret").Parse(strings.TrimSpace(out))
		require.NoError(t, err)
		assert.Equal(t, "ops", claims.Subject)
		assert.Equal(t, auth.RoleAdmin, claims.Role)
	})

	t.Run("Should fail without a secret", func(t *testing.T) {
		_, _, err := run(newTokenCmd(fixedConfig(&config.Config{})))
		assert.ErrorIs(t, err, auth.ErrSecretNotConfigured)
	})
}

func TestSendCommand(t *testing.T) {
	t.Run("Should reject an invalid form before loading config", func(t *testing.T) {
		loaded := false
		load := func() (*config.Config, error) {
			loaded = true
			return &config.Config{}, nil
		}

		_, stderr, err := run(newSendCmd(load), "--name", "Jane", "--email", "nope")
		require.Error(t, err)
		assert.False(t, loaded)
		assert.Contains(t, stderr, "Email: Invalid email address")
		assert.Contains(t, stderr, "Subject: This field is required")
	})

	t.Run("Should refuse when the provider is not configured", func(t *testing.T) {
		_, _, err := run(newSendCmd(fixedConfig(&config.Config{})),
			"--name", "Jane", "--email", "jane@x.io", "--subject", "Hi", "--message", "Hello")
		assert.ErrorIs(t, err, domain.ErrProviderNotConfigured)
	})

	t.Run("Should simulate in test mode and record the outcome", func(t *testing.T) {
		cfg := &config.Config{
			OwnerName:  "Site Owner",
			SQLitePath: filepath.Join(t.TempDir(), "outcomes.db"),
		}

		out, _, err := run(newSendCmd(fixedConfig(cfg)), "--test-mode",
			"--name", "Jane", "--email", "jane@x.io", "--subject", "Hi", "--message", "Hello")
		require.NoError(t, err)

		var outcome domain.SubmissionOutcome
		require.NoError(t, json.Unmarshal([]byte(out), &outcome))
		assert.Equal(t, domain.StatusSucceededFully, outcome.Status)
		assert.True(t, outcome.TestMode)
		assert.Zero(t, outcome.AckAttempts)

		listed, _, err := run(newSubmissionsCmd(fixedConfig(cfg)))
		require.NoError(t, err)
		assert.Contains(t, listed, outcome.ID)
		assert.Contains(t, listed, string(domain.StatusSucceededFully))
	})
}

func TestSubmissionsCommandWithoutStore(t *testing.T) {
	_, _, err := run(newSubmissionsCmd(fixedConfig(&config.Config{})))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"send", "token", "submissions"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

package cli

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"trading-journal/internal/config"
	"trading-journal/internal/errors"
)

// Store initialization can fail at startup, leaving App.Store nil. Every
// journal command must refuse to run instead of dereferencing it.
func TestJournalCommandsRejectMissingStore(t *testing.T) {
	app := &App{Config: &config.Config{}, Logger: zerolog.Nop()}

	cases := []struct {
		cmd  *cobra.Command
		args []string
	}{
		{newStatsCmd(app), nil},
		{newMonthlyCmd(app), nil},
		{newEquityCmd(app), nil},
		{newInsightsCmd(app), nil},
		{newTradesCmd(app), nil},
		{newRemoveCmd(app), []string{"T1"}},
		{newAccountListCmd(app), nil},
		{newAccountRemoveCmd(app), []string{"ACC1"}},
	}

	for _, tc := range cases {
		tc.cmd.SetOut(&bytes.Buffer{})
		tc.cmd.SetErr(&bytes.Buffer{})
		tc.cmd.SilenceUsage = true
		tc.cmd.SilenceErrors = true
		if tc.args == nil {
			tc.args = []string{}
		}
		tc.cmd.SetArgs(tc.args)

		err := tc.cmd.Execute()
		assert.ErrorIs(t, err, errors.ErrDatabaseError, "command %q should fail cleanly without a store", tc.cmd.Use)
	}
}

func TestAccountIDFlagOverridesDefault(t *testing.T) {
	cfg := &config.Config{}
	cfg.Journal.DefaultAccount = "DEFAULT"
	app := &App{Config: cfg, Logger: zerolog.Nop()}

	cmd := &cobra.Command{Use: "stats"}
	cmd.Flags().String("account", "", "")
	assert.Equal(t, "DEFAULT", app.accountID(cmd))

	cmd.Flags().Set("account", "OTHER")
	assert.Equal(t, "OTHER", app.accountID(cmd))
}

// Command aquablue runs the Aqua Blue order/contact backend and submits the
// customer forms from a terminal.
//
//	aquablue serve                      # HTTP backend, pages and admin dashboard
//	aquablue submit order --interactive # fill the order form with prompts
//	aquablue local show aquaBlueOrders  # inspect submissions saved offline
//
// @title       Aqua Blue Hydropack API
// @version     1.0
// @description Order and contact form backend for Aqua Blue water delivery.
// @BasePath    /
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/config"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/sysutil"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every subcommand needs once the root pre-run has loaded
// the environment.
type app struct {
	cfg config.Config
	// logOut receives log lines; stderr unless a test swaps it.
	logOut io.Writer
	// prompter asks for field values in interactive mode.
	prompter prompter
}

func newRootCmd() *cobra.Command {
	a := &app{prompter: surveyPrompter{}}
	return newRootCmdFor(a)
}

func newRootCmdFor(a *app) *cobra.Command {
	var envFile string
	root := &cobra.Command{
		Use:           "aquablue",
		Short:         "Aqua Blue water delivery forms: backend server and submission client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; real environments set variables directly.
			if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
				return fmt.Errorf("loading %s: %w", envFile, err)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			out := a.logOut
			if out == nil {
				out = cmd.ErrOrStderr()
			}
			sysutil.ConfigureLogger(cfg.LogLevel, cfg.LogPretty, out)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(newServeCmd(a), newSubmitCmd(a), newLocalCmd(a))
	return root
}

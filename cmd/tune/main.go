// Package main provides the tuneshell CLI application entry point.
// tuneshell compiles one-line media commands into validated operations
// against a remote media-control service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"tuneshell/internal/config"
	"tuneshell/internal/logger"
	"tuneshell/internal/session"
	"tuneshell/internal/shell"
	"tuneshell/internal/spotify"
)

var (
	logLevel   string
	logFile    string
	configFile string
	version    = "0.1.0" // set at build time
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tune",
	Short: "tuneshell - a command language for remote media control",
	Long: `tuneshell turns one-line commands like 'play "jazz" volume 0.7 mode shuffle'
into validated operations against a remote media service.`,
	RunE: runShell, // default behavior is the interactive shell
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	RunE:  runShell,
}

var batchCmd = &cobra.Command{
	Use:   "batch <script>",
	Short: "Execute a script of commands, one per line",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("tuneshell v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.AddCommand(shellCmd, batchCmd, versionCmd)
}

// newSession loads configuration and wires the collaborator factories.
func newSession() (*session.Session, error) {
	// Credentials commonly live in a .env next to the invocation.
	_ = godotenv.Load()

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	file := logFile
	if file == "" {
		file = cfg.LogFile
	}
	if err := logger.Configure(level, file); err != nil {
		return nil, err
	}

	client := spotify.NewClient(cfg, &spotify.StaticAuthenticator{
		Credentials: spotify.Credentials{
			AccessToken: cfg.AccessToken,
			ClientToken: cfg.ClientToken,
		},
	})
	return session.New(spotify.Factories(client)), nil
}

func runShell(_ *cobra.Command, _ []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Error("Closing session", "error", err)
		}
	}()

	sh := shell.New(sess, os.Stdout, true)
	return sh.Run(context.Background(), os.Stdin)
}

func runBatch(_ *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	sess, err := newSession()
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			logger.Error("Closing session", "error", err)
		}
	}()

	sh := shell.New(sess, os.Stdout, false)
	return sh.Run(context.Background(), file)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package cli implements the gamesctl operator commands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/database"
	"gamecatalog/backend/internal/logger"
	gormrepository "gamecatalog/backend/internal/repository/gorm"
	"gamecatalog/backend/internal/service"
	"gamecatalog/backend/pkg/jwt"
)

type globalFlags struct {
	envDir  string
	verbose bool
}

// NewRootCommand builds the gamesctl command tree.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "gamesctl",
		Short:         "Game catalog operator CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.envDir, "env-dir", ".", "directory holding the .env file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log to stdout")

	root.AddCommand(newImportCommand(flags))
	root.AddCommand(newTokenCommand(flags))
	root.AddCommand(newMigrateCommand(flags))
	return root
}

func newImportCommand(flags *globalFlags) *cobra.Command {
	var provider, file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a provider batch from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if provider == "" {
				return errors.New("--provider required")
			}
			in, closeIn, err := openInput(cmd, file)
			if err != nil {
				return err
			}
			defer closeIn()

			records, err := service.DecodeBatch(in)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			cfg, log, db, err := bootstrap(flags)
			if err != nil {
				return err
			}
			defer database.Close(db)
			defer log.Sync()

			store := gormrepository.New(db)
			store.SkipUnchanged = cfg.ImportSkipUnchanged
			svc := &service.ImportService{Store: store, Logger: log}
			stats := svc.Import(cmd.Context(), provider, records)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "", "provider namespace")
	cmd.Flags().StringVarP(&file, "file", "f", "-", "batch file, - for stdin")
	return cmd
}

func newTokenCommand(flags *globalFlags) *cobra.Command {
	var provider string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a provider-scoped import token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.LoadConfig(flags.envDir)
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			tok, err := jwt.GenerateToken(cfg.JWTSecret, provider, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&provider, "provider", jwt.AnyProvider, "provider the token may import for, * for all")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime, 0 for no expiry")
	return cmd
}

func newMigrateCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap(flags)
			if err != nil {
				return err
			}
			defer database.Close(db)
			defer log.Sync()
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

// bootstrap loads config, builds the logger and opens (and migrates) the database.
func bootstrap(flags *globalFlags) (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, found, err := config.LoadConfig(flags.envDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := zap.NewNop()
	if flags.verbose {
		if log, err = logger.New(cfg); err != nil {
			return nil, nil, nil, fmt.Errorf("build logger: %w", err)
		}
	}
	if !found {
		log.Warn("no .env file found, using environment only", zap.String("dir", flags.envDir))
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, log, db, nil
}

func openInput(cmd *cobra.Command, file string) (io.Reader, func(), error) {
	if file == "" || file == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

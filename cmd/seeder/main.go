// Command seeder fills the employees table with fake records.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"employee_service/internal/app/di"
	"employee_service/internal/platform/config"
	"employee_service/internal/platform/db"
	"employee_service/internal/platform/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "seeder [count]",
		Short: "Populate the employees table with fake employees",
		Long: `Creates count fake employees (default 10) through the business layer,
so duplicate emails are rejected exactly as they are over HTTP.
Connection settings are read from the environment and .env.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 10
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v < 1 {
					return fmt.Errorf("count must be a positive integer, got %q", args[0])
				}
				n = v
			}

			config.LoadDotEnv(".env")
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.Setup(cfg.Env)

			gdb, err := db.Open(cfg.DB)
			if err != nil {
				return err
			}
			sqlDB, err := gdb.DB()
			if err != nil {
				log.Error("failed to get sql.DB", logger.Err(err))
				return fmt.Errorf("failed to get sql.DB: %w", err)
			}
			defer closeDB(log, sqlDB)

			uc := di.NewEmployeeUsecase(gdb, nil, cfg.CacheTTL, nil)
			res, err := seed(cmd.Context(), uc, newGenerator(), n)
			if err != nil {
				log.Error("seeding failed", logger.Err(err), "created", len(res.Created))
				return err
			}

			log.Info("seeding finished", "created", len(res.Created), "skipped", res.Skipped)
			if !quiet {
				printSummary(cmd.OutOrStdout(), res)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the created employees")
	return cmd
}

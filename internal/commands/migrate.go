package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/cashti-console/internal/storage/migrations"
)

func migrateCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				source = envConfig.MigrationsPath
			}

			result, err := migrations.Run(logger, envConfig.ConnectionString(), source)
			if err != nil {
				return err
			}

			logger.WithFields(logrus.Fields{
				"preMigrationVersion":  result.PreMigrationVersion,
				"postMigrationVersion": result.PostMigrationVersion,
			}).Info("Migrations completed")
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "migration source URL (default from MIGRATIONS_PATH)")
	return cmd
}

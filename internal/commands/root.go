package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/cashti-console/internal/config"
	"github.com/carson-networks/cashti-console/internal/logging"
)

var (
	envConfig *config.Config
	logger    *logrus.Logger
)

// NewRootCommand builds the cashti-console command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cashti-console",
		Short:         "Cash Ti Machann admin console backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ProcessEnvironmentVariables()
			if err != nil {
				return err
			}
			envConfig = cfg
			logger = logging.SetupLogging(cfg.LogLevel)
			return nil
		},
	}

	root.AddCommand(serveCmd(), migrateCmd(), exportCmd())
	return root
}

func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil {
		log := logger
		if log == nil {
			log = logrus.StandardLogger()
		}
		log.WithError(err).Error("cashti-console failed")
	}
	return err
}

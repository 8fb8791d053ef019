package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carson-networks/cashti-console/api"
	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/operator"
	"github.com/carson-networks/cashti-console/internal/operator/actions"
	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/service"
	"github.com/carson-networks/cashti-console/internal/storage"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the console HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("cashti-console starting")

			dbStorage, err := storage.NewStorage(envConfig)
			if err != nil {
				return err
			}
			defer dbStorage.Close()

			client := upstream.NewClient(envConfig.UpstreamBaseURL, envConfig.UpstreamTimeout)

			delegator := operator.NewOperatorDelegator(actions.Env{Upstream: client, Store: dbStorage}, envConfig.OperatorWorkers)
			delegator.Start()
			defer delegator.Stop()

			settings := service.Settings{
				Location:   envConfig.Location(),
				Locale:     records.ParseLocale(envConfig.ConsoleLocale),
				FetchLimit: envConfig.TransactionFetchLimit,
			}
			svc := service.NewService(client, delegator, dbStorage.Read().Preferences, settings)

			httpRest := api.Rest{
				Logger:   logger,
				Port:     envConfig.HTTPPort,
				Service:  svc,
				Database: dbStorage,
				Dates:    common.Dates{Location: settings.Location},
			}
			return httpRest.Serve(ctx)
		},
	}
}

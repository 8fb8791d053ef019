package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/service"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

// TokenEnv may hold the admin token instead of --token.
const TokenEnv = "CONSOLE_TOKEN"

type exportOptions struct {
	token    string
	login    string
	password string
	outDir   string
	stdout   bool
	filter   common.FilterBody
	sort     common.SortBody
	selected []string
}

func (o *exportOptions) bind(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.token, "token", "", "admin API token (default $"+TokenEnv+")")
	f.StringVar(&o.login, "login", "", "admin email or username, used when no token is given")
	f.StringVar(&o.password, "password", "", "admin password, used with --login")
	f.StringVarP(&o.outDir, "out", "o", ".", "directory the CSV file is written to")
	f.BoolVar(&o.stdout, "stdout", false, "write the CSV to stdout instead of a file")

	f.StringVarP(&o.filter.Query, "query", "q", "", "search text")
	f.StringVar(&o.filter.Status, "status", "", "status filter")
	f.StringVar(&o.filter.KYCStatus, "kyc", "", "KYC status filter (users only)")
	f.StringVar(&o.filter.Type, "type", "", "type filter")
	f.StringVar(&o.filter.DatePreset, "preset", "", "date preset: today, week, month, year or custom")
	f.StringVar(&o.filter.StartDate, "from", "", "start date, YYYY-MM-DD")
	f.StringVar(&o.filter.EndDate, "to", "", "end date, YYYY-MM-DD")
	f.StringVar(&o.filter.MinAmount, "min", "", "minimum amount")
	f.StringVar(&o.filter.MaxAmount, "max", "", "maximum amount")
	f.StringVar(&o.sort.Key, "sort", "", "sort key")
	f.StringVar(&o.sort.Direction, "dir", "", "sort direction, asc or desc")
	f.StringSliceVar(&o.selected, "id", nil, "export only these IDs")
}

func (o *exportOptions) resolveToken(ctx context.Context, auth *service.AuthService) (string, error) {
	if o.token != "" {
		return o.token, nil
	}
	if t := os.Getenv(TokenEnv); t != "" {
		return t, nil
	}
	if o.login == "" {
		return "", errors.New("one of --token, $" + TokenEnv + " or --login is required")
	}
	session, err := auth.Login(ctx, o.login, o.password)
	if err != nil {
		return "", fmt.Errorf("logging in: %w", err)
	}
	return session.Token, nil
}

func (o *exportOptions) query() (service.ExportQuery, error) {
	dates := common.Dates{Location: envConfig.Location()}
	return dates.ExportQuery(common.ExportBody{Filter: o.filter, Sort: o.sort, Selected: o.selected})
}

func (o *exportOptions) write(w io.Writer, exp *service.Export) (string, error) {
	if o.stdout {
		_, err := io.WriteString(w, exp.Body)
		return "", err
	}
	path := filepath.Join(o.outDir, exp.FileName)
	if err := os.WriteFile(path, []byte(exp.Body), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

type exportFunc func(ctx context.Context, svc *service.Service, token string, q service.ExportQuery) (*service.Export, error)

func exportCmd() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a filtered CSV export from the command line",
	}
	opts.bind(cmd)

	cmd.AddCommand(
		exportSubcommand(opts, "users", "Export users", func(ctx context.Context, svc *service.Service, token string, q service.ExportQuery) (*service.Export, error) {
			return svc.Users.ExportUsers(ctx, token, q)
		}),
		exportSubcommand(opts, "transactions", "Export transactions", func(ctx context.Context, svc *service.Service, token string, q service.ExportQuery) (*service.Export, error) {
			return svc.Transactions.ExportTransactions(ctx, token, q)
		}),
	)
	return cmd
}

func exportSubcommand(opts *exportOptions, use, short string, run exportFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.stdout {
				logger.SetOutput(cmd.ErrOrStderr())
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*envConfig.UpstreamTimeout)
			defer cancel()

			client := upstream.NewClient(envConfig.UpstreamBaseURL, envConfig.UpstreamTimeout)
			svc := service.NewService(client, nil, nil, service.Settings{
				Location:   envConfig.Location(),
				Locale:     records.ParseLocale(envConfig.ConsoleLocale),
				FetchLimit: envConfig.TransactionFetchLimit,
			})

			token, err := opts.resolveToken(ctx, svc.Auth)
			if err != nil {
				return err
			}
			q, err := opts.query()
			if err != nil {
				return err
			}

			start := time.Now()
			exp, err := run(ctx, svc, token, q)
			if err != nil {
				return err
			}

			path, err := opts.write(cmd.OutOrStdout(), exp)
			if err != nil {
				return err
			}
			logger.WithFields(logrus.Fields{
				"export":    use,
				"rows":      exp.Rows,
				"file":      path,
				"elapsedMs": time.Since(start).Milliseconds(),
			}).Info("Export.Complete")
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"fahrplan/config"
	"fahrplan/internal/connection"
	"fahrplan/internal/connection/delivery/table"
	"fahrplan/internal/connection/repository"
	"fahrplan/internal/connection/repository/opendata"
	connUsecase "fahrplan/internal/connection/usecase"
	"fahrplan/internal/query"
	queryUsecase "fahrplan/internal/query/usecase"
	"fahrplan/pkg/datemath"
	"fahrplan/pkg/log"
)

type options struct {
	full       bool
	info       bool
	debug      bool
	proxy      string
	configFile string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           name + " [options] arguments",
		Short:         description,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd.Context(), opts, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), helpText(c.Flags().FlagUsages()))
	})

	// Options only before the query: "von bern nach basel -f" is a query token.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&opts.full, "full", "f", false, "Show full connection info, including changes")
	cmd.Flags().BoolVarP(&opts.info, "info", "i", false, "Verbose output")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "Debug output")
	cmd.Flags().StringVarP(&opts.proxy, "proxy", "p", "", "HTTP proxy URL")
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Config file (default: fahrplan.yaml)")

	return cmd
}

func execute(ctx context.Context, opts *options, tokens []string, stdout, stderr io.Writer) error {
	if len(tokens) == 0 {
		return errNotEnoughArguments
	}

	// 1. Configuration
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.proxy != "" {
		cfg.API.Proxy = opts.proxy
	}
	switch {
	case opts.debug:
		cfg.Logger.Level = "debug"
	case opts.info:
		cfg.Logger.Level = "info"
	}

	// 2. Logger
	logger := log.New(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	}, stderr)
	ctx = log.WithRunID(ctx, uuid.NewString())

	// 3. Query parsing
	dateMathParser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}
	queryUC := queryUsecase.New(logger, dateMathParser)

	parsed, err := queryUC.Parse(ctx, tokens)
	if err != nil {
		return err
	}
	if parsed.Language == query.NoLanguage {
		return errNotEnoughArguments
	}

	// 4. Timetable lookup
	client, err := opendata.NewClient(logger, opendata.ClientOptions{
		BaseURL:         cfg.API.URL,
		Timeout:         cfg.API.Timeout,
		Proxy:           cfg.API.Proxy,
		UserAgent:       name + "/" + version,
		RetryAttempts:   cfg.API.RetryAttempts,
		RetryDelay:      cfg.API.RetryDelay,
		RateLimitPerMin: cfg.API.RateLimitPerMin,
	})
	if err != nil {
		return err
	}
	repo := opendata.New(client, repository.CacheOptions{
		Size: cfg.API.CacheSize,
		TTL:  cfg.API.CacheTTL,
	}, logger)
	connUC := connUsecase.New(logger, repo, cfg.API.Limit)

	out, err := connUC.Search(ctx, connection.SearchInput{
		Request: parsed.Request,
		Full:    cfg.Output.Full || opts.full,
	})
	if err != nil {
		return err
	}

	// 5. Output
	if len(out.Itineraries) == 0 {
		fmt.Fprintf(stdout, "No connections found from \"%s\" to \"%s\".\n", out.From, out.To)
		return nil
	}
	table.Render(stdout, out.Itineraries)
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Adda-Baaj/museum-collection/internal/app"
	"github.com/Adda-Baaj/museum-collection/internal/config"
	"github.com/Adda-Baaj/museum-collection/internal/logger"
	"github.com/Adda-Baaj/museum-collection/internal/render"
	"github.com/Adda-Baaj/museum-collection/pkg/collection"
	"github.com/Adda-Baaj/museum-collection/pkg/httpclient"
)

// options carries persistent flag values.
type options struct {
	configFile string
	output     string
	baseURL    string
	logLevel   string
	timeout    int64
}

// runner builds the runtime for each command invocation.
type runner struct {
	opts   options
	client httpclient.Client
}

// NewRootCommand assembles the command tree. A nil client means each run
// builds a resty client from configuration.
func NewRootCommand(client httpclient.Client) *cobra.Command {
	r := &runner{client: client}

	root := &cobra.Command{
		Use:   "collection",
		Short: "Browse the Metropolitan Museum of Art collection API",
		Long: `collection queries the Met public collection API.

Without a subcommand it prints the total object count, the object at the
configured sample position and the list of curatorial departments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context, b *app.Browser) error {
				return b.Overview(ctx)
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&r.opts.configFile, "config", "c", "", "config file path")
	flags.StringVarP(&r.opts.output, "output", "o", "", "output format: text, json, yaml")
	flags.StringVar(&r.opts.baseURL, "base-url", "", "collection API base URL")
	flags.StringVar(&r.opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.Int64Var(&r.opts.timeout, "timeout", 0, "request timeout in seconds (0 keeps the transport default)")

	root.AddCommand(
		newCountCommand(r),
		newIDsCommand(r),
		newObjectCommand(r),
		newDepartmentsCommand(r),
	)
	return root
}

// Execute runs the command tree with the given context.
func Execute(ctx context.Context) error {
	return NewRootCommand(nil).ExecuteContext(ctx)
}

// run loads configuration, builds the browser and executes fn. Failures of
// the collection client are reported on stdout and do not fail the command.
func (r *runner) run(cmd *cobra.Command, fn func(ctx context.Context, b *app.Browser) error) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.Init(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.DebugObj("configuration loaded", "config", cfg)
	logger.InfoObj("collection starting", "command", cmd.CommandPath())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := render.New(cmd.OutOrStdout(), cfg.OutputFormat)
	browser, err := app.NewBrowser(ctx, cfg, log, out, r.client)
	if err == nil {
		err = fn(ctx, browser)
	}
	if err != nil {
		return report(out, err)
	}
	return nil
}

func (r *runner) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(r.opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputFormat = r.opts.output
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = r.opts.baseURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = r.opts.logLevel
	}
	if flags.Changed("timeout") {
		cfg.HTTPTimeoutSeconds = r.opts.timeout
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// report is the single recovery point for collection failures. It logs per
// error kind and prints the failure line.
func report(out *render.Renderer, err error) error {
	kind := collection.Kind(err)
	switch kind {
	case collection.KindNone:
		return nil
	case collection.KindInvalidIdentifier:
		logger.WarnObj("object position not found", "error", err.Error())
	case collection.KindRequestFailed:
		var reqErr *collection.RequestFailedError
		errors.As(err, &reqErr)
		logger.ErrorObj("collection request failed", "request_error", map[string]any{
			"endpoint": reqErr.Endpoint,
			"status":   reqErr.StatusCode,
		})
	case collection.KindDecodeFailed:
		var decErr *collection.DecodeFailedError
		errors.As(err, &decErr)
		logger.ErrorObj("collection response not decodable", "decode_error", map[string]any{
			"endpoint": decErr.Endpoint,
			"error":    decErr.Err.Error(),
		})
	case collection.KindTransport:
		logger.ErrorObj("collection request not delivered", "error", err.Error())
	default:
		logger.ErrorObj("command failed", "error", err.Error())
	}
	return out.Failure(kind.String(), err.Error())
}

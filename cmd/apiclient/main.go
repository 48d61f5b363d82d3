package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/apiclient/internal/cliconfig"
	"github.com/bft-labs/apiclient/pkg/client"
	"github.com/bft-labs/apiclient/pkg/log"
)

const longHelp = `Send a single request through the shared API client.

The base URL comes from --base-url, the BASE_URL environment variable or the
config file, in that order. Every request uses a fixed five minute timeout
and is never retried. The response body is written to stdout.`

var exampleUsage = strings.TrimSpace(`
  BASE_URL=https://api.example.com apiclient GET /v1/users
  apiclient --base-url http://localhost:8000 POST /v1/auth/login \
      --header "Content-Type: application/json" --data '{"email":"a@b.c"}'
  apiclient --config $HOME/.apiclient/config.toml DELETE /v1/sessions/42
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath string
		data    string
		headers []string
	)

	root := &cobra.Command{
		Use:           "apiclient METHOD PATH",
		Short:         "Send a request to the configured API",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// file < env < flags
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}
			cliconfig.ApplyEnvConfig(&cfg, changed)

			if err := cfg.Validate(); err != nil {
				return err
			}

			level := cfg.LogLevel
			if cfg.Verbose {
				level = zerolog.DebugLevel.String()
			}
			logger := cliconfig.NewLogger(stderr, level)
			logger.Debug().Interface("config", cfg).Msg("configuration")

			c := client.New(client.Config{BaseURL: cfg.BaseURL},
				client.WithLogger(log.NewZerologAdapterWithLogger(logger)),
				client.WithDebug(cfg.Verbose),
			)

			req := c.R().SetContext(cmd.Context())
			for _, h := range headers {
				k, v, ok := strings.Cut(h, ":")
				if !ok {
					return fmt.Errorf("header %q: want \"Key: Value\"", h)
				}
				req.SetHeader(strings.TrimSpace(k), strings.TrimSpace(v))
			}
			if data != "" {
				req.SetBody(data)
			}

			method, path := strings.ToUpper(args[0]), args[1]
			resp, err := req.Execute(method, path)
			if err != nil {
				return fmt.Errorf("%s %s: %w", method, path, err)
			}

			if _, err := stdout.Write(resp.Body()); err != nil {
				return fmt.Errorf("write response: %w", err)
			}
			logger.Info().
				Str("method", method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("elapsed", resp.Time()).
				Msg("response")

			if resp.IsError() {
				return fmt.Errorf("server returned %d", resp.StatusCode())
			}
			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.apiclient/config.toml)")
	root.Flags().StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL prepended to PATH (default: $BASE_URL)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "dump requests and responses to stderr")
	root.Flags().StringVarP(&data, "data", "d", "", "request body")
	root.Flags().StringArrayVarP(&headers, "header", "H", nil, "request header as \"Key: Value\" (repeatable)")

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		l := cliconfig.Logger()
		l.Error().Err(err).Msg("apiclient")
		stop()
		os.Exit(1)
	}
}

// Command udp-line-send reads metric-protocol lines from stdin and delivers
// them to a UDP collector, splitting oversized batches at newline boundaries.
//
// Configuration precedence: explicitly set flags, then STATSD_HOST and
// STATSD_PORT environment variables, then the optional TOML config file,
// then built-in defaults.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	sender "github.com/itzg/udp-line-sender"
)

var exampleUsage = strings.TrimSpace(`
  echo "cpu.load:0.5|g" | udp-line-send --host 10.0.0.5
  udp-line-send --config /etc/udp-line-send.toml --async < metrics.txt
`)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	cfg := sender.DefaultConfig()
	var (
		cfgPath string
		async   bool
		verbose bool
	)

	root := &cobra.Command{
		Use:          "udp-line-send",
		Short:        "Send metric-protocol lines from stdin to a UDP collector",
		Example:      exampleUsage,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger = logger.Level(zerolog.DebugLevel)
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if err := loadConfig(&cfg, cfgPath, changed); err != nil {
				return err
			}
			cfg.Logger = &logger

			client, err := sender.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			payload, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			text := strings.TrimSuffix(string(payload), "\n")
			if text == "" {
				logger.Info().Msg("no input, nothing sent")
				return nil
			}

			if async {
				err = <-client.SendAsync(text)
			} else {
				err = client.Send(text)
			}
			if err != nil {
				return err
			}
			logger.Info().Int("bytes", len(text)).Msg("sent")
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to TOML config file")
	root.Flags().StringVar(&cfg.Host, "host", cfg.Host, "collector host name or IP address")
	root.Flags().IntVar(&cfg.Port, "port", cfg.Port, "collector UDP port")
	root.Flags().IntVar(&cfg.MaxPacketSize, "max-packet-size", cfg.MaxPacketSize,
		"maximum datagram size in bytes (0 disables splitting)")
	root.Flags().BoolVar(&async, "async", false, "send on the non-blocking path")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Error().Err(err).Msg("udp-line-send")
		os.Exit(1)
	}
}

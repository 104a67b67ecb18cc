package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fapimcp/internal/mcpserver"
	"fapimcp/pkg/core"
	"fapimcp/pkg/dispatch"
	"fapimcp/pkg/exchange/binance"
)

var (
	configPath string
	listTools  bool
	listFormat string
)

var rootCmd = &cobra.Command{
	Use:   "binance-futures-mcp",
	Short: "Binance USDⓈ-M Futures trading tools for MCP clients",
	Long: `binance-futures-mcp exposes futures account, position and order operations
as MCP tools over stdio. Credentials are read from BINANCE_API_KEY and
BINANCE_SECRET_KEY.`,
	SilenceUsage: true,
	RunE:         run,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "binance-futures-mcp.toml", "Path to the TOML config file")
	rootCmd.Flags().BoolVar(&listTools, "list-tools", false, "Print the tool table and exit")
	rootCmd.Flags().StringVar(&listFormat, "format", "json", "Output format for --list-tools: json or yaml")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		return err
	}

	registry, err := dispatch.NewRegistry(binance.Tools())
	if err != nil {
		return fmt.Errorf("build tool registry: %w", err)
	}

	if listTools {
		return writeTools(cmd.OutOrStdout(), registry.Tools(), listFormat)
	}

	logger := newLogger(cfg.LogLevel)

	if err := cfg.RequireCredentials(); err != nil {
		logger.Error().Err(err).Msg("cannot start without credentials")
		return err
	}

	client, err := binance.New(cfg,
		binance.WithLogger(logger),
		binance.WithUserAgent("binance-futures-mcp/"+version),
	)
	if err != nil {
		return fmt.Errorf("create futures client: %w", err)
	}
	defer client.Close()

	d := dispatch.New(registry, client, dispatch.WithLogger(logger))
	srv := mcpserver.New(cfg.ServerName, version, d, mcpserver.WithLogger(logger))

	logger.Info().
		Str("version", version).
		Int("tools", registry.Len()).
		Msg("serving on stdio")

	if err := srv.ServeStdio(); err != nil {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

func writeTools(w io.Writer, tools []core.ToolSpec, format string) error {
	switch format {
	case "json":
		data, err := sonic.ConfigStd.MarshalIndent(tools, "", "  ")
		if err != nil {
			return fmt.Errorf("encode tools: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tools); err != nil {
			return fmt.Errorf("encode tools: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

// Command listhashmap loads key=value files into a listhashmap.HashMap and queries it.
package main

import (
	"fmt"
	"os"

	"github.com/gostonefire/listhashmap"
	"github.com/gostonefire/listhashmap/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cli - State shared by the sub commands, filled in by the root command's PersistentPreRunE
type cli struct {
	configFile string
	verbose    bool
	cfg        config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "listhashmap",
		Short: "Load key=value files into a hash map and query it",
		Long: `listhashmap reads files with one key=value pair per line into a hash map.

The first value seen for a key wins, later duplicates are ignored. Pairs are
listed newest first.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.loadCmd(), c.getCmd(), c.statCmd())

	return root
}

// setup - Loads configuration and builds the logger
func (c *cli) setup() (err error) {
	c.cfg, err = config.Load(c.configFile)
	if err != nil {
		return
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(c.cfg.Level())
	if c.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	c.logger, err = zc.Build()
	if err != nil {
		err = fmt.Errorf("failed to initialize logger: %w", err)
	}

	return
}

// open - Loads fileName with the configured hash algorithm
func (c *cli) open(fileName string) (*listhashmap.HashMap[string, string], error) {
	h, err := loadFile(fileName, hashAlgorithm(c.cfg.HashAlgorithm), c.logger)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("loaded file", zap.String("file", fileName), zap.Int("records", h.Len()))

	return h, nil
}

func (c *cli) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Print all pairs of a file, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.open(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for k, v := range h.All() {
				fmt.Fprintf(out, "%s=%s\n", k, v)
			}
			return nil
		},
	}
}

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Print the value stored for key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.open(args[0])
			if err != nil {
				return err
			}
			value, err := h.At(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func (c *cli) statCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <file>",
		Short: "Print bucket statistics as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.open(args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer func() { _ = enc.Close() }()
			return enc.Encode(h.Stat())
		},
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/meigma/multivolume"
)

// settings holds the values shared by every subcommand after flags,
// environment and the optional config file are merged.
type settings struct {
	VolumeSize string `mapstructure:"volume-size"`
	Digits     int    `mapstructure:"digits"`
	Start      int    `mapstructure:"start"`
	Hex        bool   `mapstructure:"hex"`
	LogLevel   string `mapstructure:"log-level"`
}

type app struct {
	v      *viper.Viper
	cfg    settings
	log    *slog.Logger
	stderr io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "multivolume",
		Short:         "Split, join and inspect multi-volume files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.stderr = cmd.ErrOrStderr()
			return a.load(cmd.Flags())
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file (yaml, json or toml)")
	flags.String("volume-size", "10MiB", "Volume capacity, e.g. 100MiB, 1g, 4096")
	flags.Int("digits", multivolume.DefaultDigits, "Width of the volume suffix")
	flags.Int("start", multivolume.DefaultStartIndex, "Suffix value of the first volume")
	flags.Bool("hex", false, "Use lowercase hexadecimal suffixes")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newSplitCmd(a),
		newJoinCmd(a),
		newCatCmd(a),
		newInfoCmd(a),
	)
	return cmd
}

// load merges flags, MULTIVOLUME_* environment variables and the config file.
func (a *app) load(flags *pflag.FlagSet) error {
	a.v.SetEnvPrefix("multivolume")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(flags); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.cfg.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

// options converts the merged settings into stream options.
func (a *app) options() ([]multivolume.Option, error) {
	size, err := multivolume.ParseSize(a.cfg.VolumeSize)
	if err != nil {
		return nil, fmt.Errorf("volume size: %w", err)
	}
	opts := []multivolume.Option{
		multivolume.WithVolumeSize(size),
		multivolume.WithDigits(a.cfg.Digits),
		multivolume.WithStartIndex(a.cfg.Start),
		multivolume.WithLogger(a.log),
	}
	if a.cfg.Hex {
		opts = append(opts, multivolume.WithHexSuffix())
	}
	return opts, nil
}

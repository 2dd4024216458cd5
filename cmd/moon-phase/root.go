package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/chrissnell/moonphase/internal/constants"
	"github.com/chrissnell/moonphase/internal/log"
	"github.com/chrissnell/moonphase/internal/report"
	"github.com/chrissnell/moonphase/pkg/config"
	"github.com/chrissnell/moonphase/pkg/lunar"
	"github.com/chrissnell/moonphase/pkg/responseformat"
)

type options struct {
	timeStr string
	cfgFile string
	format  string
	debug   bool
	now     func() time.Time
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "moon-phase",
		Short:         "Show the current moon phase and the nearest principal phases",
		Long:          "moon-phase computes the Moon's illumination and phase name for an instant, and the days since and until the nearest New Moon, First Quarter, Full Moon and Last Quarter.",
		Version:       constants.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          opts.runView(report.ViewSummary),
	}

	root.PersistentFlags().StringVar(&opts.timeStr, "time", "", "UTC time to calculate phase for (RFC3339 format, e.g., 2024-01-15T12:00:00Z); defaults to now")
	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default $HOME/"+constants.DefaultConfigFile+")")
	root.PersistentFlags().StringVar(&opts.format, "format", "", "output format: text, json or msgpack")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Turn on debugging output")

	subcommands := []struct {
		view  report.View
		short string
	}{
		{report.ViewCurrent, "Print the phase name and illumination, e.g. \"Waning Crescent (3.8%)\""},
		{report.ViewPhases, "Print the nearest past and upcoming principal phases, e.g. \"Last Quarter +6, New Moon -2\""},
		{report.ViewNext, "Print the upcoming principal phase, e.g. \"NM -2\""},
		{report.ViewPrev, "Print the latest principal phase, e.g. \"LQ +6\""},
	}
	for _, sc := range subcommands {
		root.AddCommand(&cobra.Command{
			Use:   string(sc.view),
			Short: sc.short,
			Args:  cobra.NoArgs,
			RunE:  opts.runView(sc.view),
		})
	}

	return root
}

// runView returns the RunE for a command printing view
func (o *options) runView(view report.View) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := log.Init(o.debug); err != nil {
			return err
		}
		defer log.Sync()

		cfg, err := loadConfig(o.cfgFile)
		if err != nil {
			return err
		}
		if cfg.Debug && !o.debug {
			if err := log.Init(true); err != nil {
				return err
			}
		}

		t, err := o.instant()
		if err != nil {
			return err
		}

		format := cfg.Format
		if cmd.Flags().Changed("format") {
			format = o.format
		}
		formatter, err := responseformat.NewFormatter(format)
		if err != nil {
			return err
		}

		r := lunar.NewEngine(cfg.DeltaT).Calculate(t)
		log.Debugw("computed moon phase",
			"view", view,
			"time", r.Time.Format(time.RFC3339),
			"julian_day", r.JulianDay,
			"angle", r.Angle,
			"illumination", r.Illumination,
			"phase", r.Phase.String(),
			"delta_t", cfg.DeltaT,
		)

		return formatter.WriteReport(cmd.OutOrStdout(), view, r)
	}
}

// instant parses --time, or returns the current time when it is unset
func (o *options) instant() (time.Time, error) {
	if o.timeStr == "" {
		return o.now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, o.timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --time value %q: %w", o.timeStr, err)
	}
	return t.UTC(), nil
}

// loadConfig reads cfgFile, or the default file in the home directory when
// cfgFile is empty. Only the default file may be absent.
func loadConfig(cfgFile string) (*config.ConfigData, error) {
	explicit := cfgFile != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Warnw("no home directory, using default configuration", "error", err)
			return config.Default(), nil
		}
		cfgFile = filepath.Join(home, constants.DefaultConfigFile)
	}

	filename, _ := filepath.Abs(cfgFile)
	var provider config.ConfigProvider = config.NewYAMLProvider(filename)
	defer provider.Close()

	cfgData, err := provider.LoadConfig()
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("error reading config file %s: %w", filename, err)
	}
	return cfgData, nil
}

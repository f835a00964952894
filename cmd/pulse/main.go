package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/pulse/internal/anim"
	"github.com/san-kum/pulse/internal/audio"
	"github.com/san-kum/pulse/internal/config"
	"github.com/san-kum/pulse/internal/gui"
	"github.com/san-kum/pulse/internal/palette"
	"github.com/san-kum/pulse/internal/tui"
)

const version = "1.2.0"

var (
	ascii      bool
	width      int
	height     int
	pulse      float64
	fps        int
	noGlow     bool
	mute       bool
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pulse",
		Short: "pulsing color-cycling heart, windowed or in the terminal",
		RunE:  run,
	}

	rootCmd.Flags().BoolVar(&ascii, "ascii", false, "render in the terminal instead of a window")
	rootCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "window width (or grid columns with --ascii)")
	rootCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "window height (or grid rows with --ascii)")
	rootCmd.Flags().Float64Var(&pulse, "pulse", config.DefaultPulsePeriod, "pulse period in seconds")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second (windowed mode)")
	rootCmd.Flags().BoolVar(&noGlow, "no-glow", false, "disable the glow underlay")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "disable the heartbeat audio")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "named preset: "+strings.Join(config.ListPresets(), ", "))

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pulse v%s\n", version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	cycler, err := palette.NewCycler(cfg.PulsePeriod, 0)
	if err != nil {
		return err
	}
	clock := anim.NewWallClock()

	if ascii {
		farewell, err := tui.Run(cfg, cycler, clock)
		if err != nil {
			return err
		}
		fmt.Println(farewell)
		return nil
	}

	if !cfg.Mute {
		hb := audio.NewHeartbeat(cfg.PulsePeriod)
		if err := hb.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "audio unavailable, continuing silent: %v\n", err)
		} else {
			defer hb.Stop()
		}
	}

	fmt.Printf("pulse v%s | %dx%d | %d fps\n", version, cfg.Width, cfg.Height, cfg.FPS)
	if err := gui.Run(cfg, cycler, clock); err != nil {
		if err == gui.ErrNoDisplay {
			fmt.Fprintln(os.Stderr, "no display available. Run from a graphical session, or use --ascii.")
			os.Exit(1)
		}
		return err
	}
	return nil
}

// buildConfig layers flags over the optional config file over defaults.
// Only flags the user actually set override file values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (have: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		if ascii {
			cfg.Grid.Width = width
		} else {
			cfg.Width = width
		}
	}
	if flags.Changed("height") {
		if ascii {
			cfg.Grid.Height = height
		} else {
			cfg.Height = height
		}
	}
	if flags.Changed("pulse") {
		cfg.PulsePeriod = pulse
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("no-glow") {
		cfg.Glow = !noGlow
	}
	if flags.Changed("mute") {
		cfg.Mute = mute
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/lone-wolf-akela/MarkdownRender/internal/config"
	"github.com/lone-wolf-akela/MarkdownRender/internal/highlight"
	"github.com/lone-wolf-akela/MarkdownRender/internal/log"
	"github.com/lone-wolf-akela/MarkdownRender/internal/render"
	"github.com/lone-wolf-akela/MarkdownRender/internal/watch"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "mdrender [file]",
	Short:   "Render markdown with syntax-highlighted code to the terminal",
	Long:    `Renders a markdown document to the terminal, running fenced code blocks and inline code spans through a chroma-backed syntax highlighter. Reads from stdin when no file is given.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRender,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/mdrender/config.yaml)")
	rootCmd.Flags().IntP("width", "w", 0,
		"output width in cells (default: terminal width)")
	rootCmd.Flags().Bool("no-color", false,
		"disable colors and styling")
	rootCmd.Flags().StringP("theme", "t", "",
		"highlight theme: dark or light (default: dark)")
	rootCmd.Flags().Bool("watch", false,
		"re-render the file whenever it changes")
	rootCmd.Flags().Bool("debug", false,
		"write a debug log")

	// Bind flags to viper
	_ = viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("no_color", rootCmd.Flags().Lookup("no-color"))
	_ = viper.BindPFlag("theme", rootCmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("watch.enabled", rootCmd.Flags().Lookup("watch"))
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("width", defaults.Width)
	viper.SetDefault("no_color", defaults.NoColor)
	viper.SetDefault("theme", defaults.Theme)
	viper.SetDefault("watch.enabled", defaults.Watch.Enabled)
	viper.SetDefault("watch.debounce", defaults.Watch.Debounce)
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("debug_log", defaults.DebugLog)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .mdrender/config.yaml (current directory)
		// 2. ~/.config/mdrender/config.yaml (user config)
		if _, err := os.Stat(".mdrender/config.yaml"); err == nil {
			viper.SetConfigFile(".mdrender/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "mdrender"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runRender(cmd *cobra.Command, args []string) error {
	if cfg.Debug || os.Getenv("MDRENDER_DEBUG") != "" {
		cleanup, err := log.Init(cfg.DebugLog)
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer cleanup()
		// MDRENDER_DEBUG alone keeps the log at info; --debug opens it up.
		if cfg.Debug {
			log.SetMinLevel(log.LevelDebug)
		} else {
			log.SetMinLevel(log.LevelInfo)
		}
		log.Info(log.CatConfig, "config loaded", "width", cfg.Width, "theme", cfg.Theme, "watch", cfg.Watch.Enabled)
	}

	if cfg.Theme != "" && !highlight.KnownTheme(cfg.Theme) {
		log.Warn(log.CatConfig, "unknown theme, using dark", "theme", cfg.Theme)
		fmt.Fprintf(os.Stderr, "warning: unknown theme %q, using dark\n", cfg.Theme)
	}

	r := render.New(render.Options{
		Width:   outputWidth(cfg.Width, os.Stdout),
		NoColor: noColor(cfg.NoColor, os.Stdout),
		Theme:   cfg.Theme,
	})

	if len(args) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return renderTo(r, src, os.Stdout)
	}

	path := args[0]
	renderFile := func() error {
		src, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the command line
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		return renderTo(r, src, os.Stdout)
	}

	if err := renderFile(); err != nil {
		return err
	}
	if !cfg.Watch.Enabled {
		return nil
	}
	return watchLoop(path, renderFile)
}

// watchLoop re-renders the whole file on every change until interrupted.
func watchLoop(path string, renderFile func() error) error {
	w, err := watch.New(watch.Config{Path: path, DebounceDur: cfg.Watch.Debounce})
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	output := termenv.NewOutput(os.Stdout)
	for {
		select {
		case <-onChange:
			output.ClearScreen()
			if err := renderFile(); err != nil {
				log.ErrorErr(log.CatRender, "re-render failed", err)
				fmt.Fprintf(os.Stderr, "mdrender: %v\n", err)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// renderTo writes the rendered document, falling back to the raw source when
// rendering fails so the reader still sees the document.
func renderTo(r *render.Renderer, src []byte, out io.Writer) error {
	rendered, err := r.Render(src)
	if err != nil {
		log.ErrorErr(log.CatRender, "render failed, printing plain source", err)
		_, writeErr := out.Write(src)
		if writeErr != nil {
			return writeErr
		}
		return err
	}
	_, err = io.WriteString(out, rendered)
	return err
}

// outputWidth picks the configured width, the terminal width, or 80, in that
// order.
func outputWidth(configured int, f *os.File) int {
	if configured > 0 {
		return configured
	}
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// noColor reports whether styling should be suppressed: explicitly via
// config, via NO_COLOR in the environment, or because the output is not a
// terminal.
func noColor(configured bool, f *os.File) bool {
	if configured {
		return true
	}
	out := termenv.NewOutput(f)
	return out.EnvNoColor() || !term.IsTerminal(int(f.Fd()))
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

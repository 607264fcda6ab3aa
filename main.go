package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"board-catalog/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	cfg     Config
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Render the board game catalog",
	Long: `catalog loads data.json, groups the games into buckets and renders
them as expandable cards with image carousels.

Settings come from CATALOG_* environment variables; flags override them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog page over HTTP",
	RunE:  runServe,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write a static index.html and its script",
	RunE:  runBuild,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load data.json into a sqlite games table",
	RunE:  runImport,
}

var buildOut string

func init() {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&cfg.Title, "title", cfg.Title, "page title")
	pf.StringVar(&cfg.DataPath, "data", cfg.DataPath, "path to data.json")
	pf.StringVar(&cfg.DataURL, "data-url", cfg.DataURL, "fetch data.json from this URL instead")
	pf.StringVar(&cfg.SQLitePath, "sqlite", cfg.SQLitePath, "read games from this sqlite database instead")
	pf.StringVar(&cfg.ImagesDir, "images", cfg.ImagesDir, "carousel images directory")
	pf.BoolVar(&cfg.ProbeImgs, "probe-images", cfg.ProbeImgs, "resolve broken carousel images before rendering")
	pf.IntVar(&cfg.CarouselCount, "carousel-count", cfg.CarouselCount, "images per carousel")
	pf.StringVar(&cfg.CarouselExt, "carousel-ext", cfg.CarouselExt, "carousel image extension")
	pf.StringVar(&cfg.CarouselFallback, "carousel-fallback", cfg.CarouselFallback, "broken image handling: placeholder or remove")
	pf.StringVar(&cfg.CarouselDrag, "carousel-drag", cfg.CarouselDrag, "swipe feedback: live or end")

	serveCmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	serveCmd.Flags().DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "how long a loaded catalog is reused")
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "dist", "output directory")

	rootCmd.AddCommand(serveCmd, buildCmd, importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newPageOptions(c Config, scriptSrc string) (pageOptions, error) {
	carousel, err := c.Carousel()
	if err != nil {
		return pageOptions{}, err
	}
	opts := pageOptions{
		Title:     c.Title,
		ScriptSrc: scriptSrc,
		Carousel:  carousel,
	}
	if c.ProbeImgs {
		opts.Prober = &catalog.Prober{Dir: c.ImagesDir}
	}
	return opts, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	opts, err := newPageOptions(cfg, "/static/catalog.js")
	if err != nil {
		return err
	}
	src, closeSrc, err := newSource(cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	s := &server{
		source: catalog.NewCachedSource(src, cfg.CacheTTL),
		opts:   opts,
		images: cfg.ImagesDir,
		log:    logger,
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🎲 catalog is running", zap.String("addr", cfg.Addr), zap.Any("source", src))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"board-catalog/catalog"
	"board-catalog/static"
	"board-catalog/templates"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runBuild(cmd *cobra.Command, args []string) error {
	opts, err := newPageOptions(cfg, static.ScriptName)
	if err != nil {
		return err
	}
	src, closeSrc, err := newSource(cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	return buildSite(cmd.Context(), src, opts, buildOut)
}

// buildSite writes index.html and the interaction script into out. A failed
// load is logged and nothing is written.
func buildSite(ctx context.Context, src catalog.Source, opts pageOptions, out string) error {
	res := <-catalog.LoadAsync(ctx, src)
	if res.Err != nil {
		logger.Error("❌ error loading catalog", zap.Error(res.Err))
		return res.Err
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}

	page := buildPage(res.Items, opts)
	f, err := os.Create(filepath.Join(out, "index.html"))
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}
	if err := templates.CatalogPage(page).Render(ctx, f); err != nil {
		f.Close()
		return fmt.Errorf("render index.html: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	script, err := fs.ReadFile(static.FS, static.ScriptName)
	if err != nil {
		return fmt.Errorf("read embedded script: %w", err)
	}
	if err := os.WriteFile(filepath.Join(out, static.ScriptName), script, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", static.ScriptName, err)
	}

	logger.Info("✅ catalog written",
		zap.String("out", out),
		zap.Int("items", len(res.Items)),
		zap.Int("groups", len(page.Groups)))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	c := cfg
	if c.SQLitePath == "" {
		c.SQLitePath = "catalog.db"
	}
	db, err := openCatalogDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	return importCatalog(cmd.Context(), catalog.FileSource{Path: c.DataPath}, db)
}

func importCatalog(ctx context.Context, src catalog.Source, db *sql.DB) error {
	items, err := src.Load(ctx)
	if err != nil {
		logger.Error("❌ error loading catalog", zap.Error(err))
		return err
	}
	if err := catalog.ImportSQLite(ctx, db, items); err != nil {
		return err
	}
	logger.Info("📝 imported catalog", zap.Int("items", len(items)))
	return nil
}

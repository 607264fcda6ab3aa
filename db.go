package main

import (
	"database/sql"
	"path/filepath"

	"board-catalog/catalog"
)

// sqlitePath resolves the catalog database location. Relative paths land on
// the Railway volume when one is mounted.
func sqlitePath(cfg Config) string {
	path := cfg.SQLitePath
	if path == "" || path == ":memory:" || filepath.IsAbs(path) {
		return path
	}
	if cfg.VolumePath != "" {
		return filepath.Join(cfg.VolumePath, path)
	}
	return path
}

func openCatalogDB(cfg Config) (*sql.DB, error) {
	return catalog.OpenDB(sqlitePath(cfg))
}

// newSource picks where the catalog comes from: a remote URL, a sqlite
// database, or data.json on disk. The returned close func releases the
// database, if any.
func newSource(cfg Config) (catalog.Source, func() error, error) {
	noop := func() error { return nil }
	switch {
	case cfg.DataURL != "":
		return catalog.HTTPSource{URL: cfg.DataURL}, noop, nil
	case cfg.SQLitePath != "":
		db, err := openCatalogDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		return catalog.SQLiteSource{DB: db}, db.Close, nil
	default:
		return catalog.FileSource{Path: cfg.DataPath}, noop, nil
	}
}

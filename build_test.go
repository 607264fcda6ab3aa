package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"board-catalog/catalog"
	"board-catalog/static"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSiteWritesPageAndScript(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dist")
	opts := testOptions()
	opts.ScriptSrc = static.ScriptName

	require.NoError(t, buildSite(context.Background(), stubSource{items: fourBuckets()}, opts, out))

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(page), `class="bucket-grouping transition"`))
	assert.Contains(t, string(page), `<script src="catalog.js" defer>`)

	script, err := os.ReadFile(filepath.Join(out, static.ScriptName))
	require.NoError(t, err)
	assert.Contains(t, string(script), "touchend")
}

func TestBuildSiteLoadFailureWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dist")
	want := errors.New("bad json")

	err := buildSite(context.Background(), stubSource{err: want}, testOptions(), out)
	assert.ErrorIs(t, err, want)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestImportCatalogIntoSQLite(t *testing.T) {
	db, err := catalog.OpenDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, importCatalog(ctx, stubSource{items: fourBuckets()}, db))

	got, err := catalog.SQLiteSource{DB: db}.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, fourBuckets(), got)
}

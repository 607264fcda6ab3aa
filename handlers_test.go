package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"board-catalog/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

type stubSource struct {
	items []catalog.Item
	err   error
}

func (s stubSource) Load(ctx context.Context) ([]catalog.Item, error) {
	return s.items, s.err
}

func newTestServer(t *testing.T, src catalog.Source) *httptest.Server {
	t.Helper()
	s := &server{
		source: src,
		opts:   pageOptions{Title: "Games", ScriptSrc: "/static/catalog.js", Carousel: catalog.DefaultCarousel},
		images: t.TempDir(),
		log:    zap.NewNop(),
	}
	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestCatalogPageServesGroups(t *testing.T) {
	ts := newTestServer(t, stubSource{items: fourBuckets()})

	resp, body := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)
	assert.Len(t, collect(doc, byClass("bucket-grouping")), 4)
	assert.Len(t, collect(doc, byClass("cell")), 4)
}

func TestCatalogPageFilterQuery(t *testing.T) {
	ts := newTestServer(t, stubSource{items: fourBuckets()})

	_, body := get(t, ts.URL+"/?bucket=Classic")
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)

	for _, g := range collect(doc, byClass("bucket-grouping")) {
		bucket, _ := nodeAttr(g, "bucket")
		style, _ := nodeAttr(g, "style")
		if catalog.SameBucket(bucket, "Classic") {
			assert.Empty(t, style)
		} else {
			assert.Contains(t, style, "display: none", bucket)
		}
	}
}

func TestCatalogPageLoadFailureLeavesTableEmpty(t *testing.T) {
	ts := newTestServer(t, stubSource{err: errors.New("fetch failed")})

	resp, body := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)
	tables := collect(doc, func(n *html.Node) bool { id, _ := nodeAttr(n, "id"); return id == "data-table" })
	require.Len(t, tables, 1)
	assert.Nil(t, tables[0].FirstChild)
}

func TestDataJSON(t *testing.T) {
	ts := newTestServer(t, stubSource{items: fourBuckets()})

	resp, body := get(t, ts.URL+"/data.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []catalog.Item
	require.NoError(t, json.Unmarshal([]byte(body), &items))
	assert.Equal(t, fourBuckets(), items)

	failing := newTestServer(t, stubSource{err: errors.New("boom")})
	resp, _ = get(t, failing.URL+"/data.json")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestStaticScriptAndHealth(t *testing.T) {
	ts := newTestServer(t, stubSource{})

	resp, body := get(t, ts.URL+"/static/catalog.js")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "#filter-buttons div[bucket]")

	resp, body = get(t, ts.URL+"/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestImagesServedFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "placeholder.webp"), []byte("img"), 0o644))
	s := &server{source: stubSource{}, opts: testOptions(), images: dir, log: zap.NewNop()}
	ts := httptest.NewServer(s.routes())
	defer ts.Close()

	resp, body := get(t, ts.URL+"/images/placeholder.webp")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "img", body)
}

package main

import (
	"fmt"
	"net/url"
	"strings"

	"board-catalog/catalog"
	"board-catalog/interact"
	"board-catalog/templates"
)

// pageOptions carries everything about a render that is not catalog data.
type pageOptions struct {
	Title     string
	ScriptSrc string
	Carousel  catalog.CarouselConfig
	Prober    *catalog.Prober
	Bucket    string   // active filter, "" for none
	Open      []string // names of cells rendered open
}

// buildPage turns loaded items into the page view. It does no I/O beyond the
// optional image probe.
func buildPage(items []catalog.Item, opts pageOptions) templates.CatalogPageData {
	groups := catalog.GroupByBucket(items)
	filter := interact.NewFilter(opts.Bucket)

	open := make(map[string]bool, len(opts.Open))
	for _, name := range opts.Open {
		open[name] = true
	}

	page := templates.CatalogPageData{
		Title:     opts.Title,
		ScriptSrc: opts.ScriptSrc,
	}

	buckets := filterBuckets(groups)
	for _, b := range buckets {
		next, ok := filter.Next(b)
		page.Filters = append(page.Filters, templates.FilterButton{
			Bucket: b,
			Href:   filterHref(next, ok),
			Active: filter.IsActive(b),
		})
	}

	matched := false
	for _, g := range groups {
		visible := filter.Visible(g.Bucket)
		matched = matched || (visible && opts.Bucket != "")
		gd := templates.BucketGroupData{
			Bucket:      g.Bucket,
			Description: catalog.Description(g.Bucket),
			Hidden:      !visible,
		}
		for _, it := range g.Items {
			cell := interact.Cell{Item: it}
			if open[it.Name] {
				cell.Toggle()
			}
			gd.Cells = append(gd.Cells, cellData(cell, opts))
		}
		page.Groups = append(page.Groups, gd)
	}

	if opts.Bucket != "" && !matched {
		page.Notice = fmt.Sprintf("No games in bucket %q.", opts.Bucket)
		if s, ok := catalog.SuggestBucket(opts.Bucket, buckets); ok {
			page.Notice += fmt.Sprintf(" Did you mean %q?", s)
		}
	}
	return page
}

func cellData(c interact.Cell, opts pageOptions) templates.CellData {
	it := c.Item
	slots := catalog.ImageSlots(it.Name, opts.Carousel)
	if opts.Prober != nil {
		slots = opts.Prober.Resolve(slots, opts.Carousel)
	}
	images := make([]templates.ImageData, 0, len(slots))
	for _, s := range slots {
		images = append(images, templates.ImageData{Src: s.Src, Alt: s.Alt})
	}

	carousel := interact.NewCarousel(len(images), opts.Carousel.Drag)
	placeholder := ""
	if opts.Carousel.Fallback == catalog.FallbackPlaceholder {
		placeholder = opts.Carousel.Placeholder()
	}

	return templates.CellData{
		Name:        it.Name,
		Bucket:      it.Bucket,
		Color:       catalog.Color(it.Bucket),
		Pills:       catalog.Pills(it.Type),
		PlayerCount: it.PlayerCount,
		Time:        it.Time,
		Description: it.Description,
		Open:        c.Open,

		ScrollOffset: interact.ScrollOffset,
		Carousel: templates.CarouselData{
			Images:         images,
			Drag:           string(opts.Carousel.Drag),
			Index:          carousel.Current(),
			SwipeThreshold: interact.SwipeThreshold,
			Placeholder:    placeholder,
		},
	}
}

// filterBuckets is the known buckets followed by any other non-empty bucket
// found in the data, without case-insensitive duplicates.
func filterBuckets(groups []catalog.Group) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(b string) {
		key := strings.ToLower(b)
		if b == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, b)
	}
	for _, b := range catalog.KnownBuckets() {
		add(b)
	}
	for _, b := range catalog.Buckets(groups) {
		add(b)
	}
	return out
}

func filterHref(bucket string, active bool) string {
	if !active {
		return "?"
	}
	return "?" + url.Values{"bucket": {bucket}}.Encode()
}

// Package catalog loads board game records and groups them into buckets.
package catalog

import (
	"errors"

	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON = errors.New("catalog payload is not valid JSON")
	ErrNotArray    = errors.New("catalog payload is not a JSON array")
)

// Item is one board game record as found in data.json.
//
// PlayerCount and Time are display values; the source mixes strings and
// numbers, so both are kept as their text form. Description is trusted HTML.
type Item struct {
	Name        string `json:"name"`
	Bucket      string `json:"bucket"`
	Type        string `json:"type"`
	PlayerCount string `json:"playercount"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// DecodeItems parses a data.json payload. Missing and null fields decode to "",
// so a game without a bucket lands in the same "" group as `"bucket": ""`.
func DecodeItems(data []byte) ([]Item, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrNotArray
	}

	records := root.Array()
	items := make([]Item, 0, len(records))
	for _, rec := range records {
		items = append(items, Item{
			Name:        rec.Get("name").String(),
			Bucket:      rec.Get("bucket").String(),
			Type:        rec.Get("type").String(),
			PlayerCount: rec.Get("playercount").String(),
			Time:        rec.Get("time").String(),
			Description: rec.Get("description").String(),
		})
	}
	return items, nil
}

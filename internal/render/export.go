package render

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/linruohan/nohrs/internal/settings"
)

// Export returns the current values of every page as a JSON document:
//
//	{"general": {"title": "General", "resettable": true,
//	  "items": {"font-size": {"label": "Font Size", "value": 14, ...}}}}
//
// Custom items are left out.
func Export(reg *settings.Registry) (string, error) {
	doc := "{}"
	set := func(path string, v any) error {
		var err error
		doc, err = sjson.Set(doc, path, v)
		if err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
		return nil
	}

	for _, page := range reg.Pages() {
		id := page.ID()
		if err := set(id+".title", page.Title); err != nil {
			return "", err
		}
		if err := set(id+".resettable", page.Resettable); err != nil {
			return "", err
		}
		for _, item := range page.Items() {
			if item.Field().IsCustom() || item.ID() == "" {
				continue
			}
			value, err := item.Field().Get()
			if err != nil {
				return "", fmt.Errorf("export %s/%s: %w", page.Title, item.Label(), err)
			}
			prefix := id + ".items." + item.ID()
			entry := map[string]any{
				"label":    item.Label(),
				"kind":     item.Field().Kind().String(),
				"value":    value,
				"modified": item.Modified(),
			}
			if def, ok := item.Default(); ok {
				entry["default"] = def
			}
			if err := set(prefix, entry); err != nil {
				return "", err
			}
		}
	}
	return doc, nil
}

// Query evaluates a gjson path against an exported document. It returns the
// raw JSON of the match and false when nothing matches.
func Query(doc, path string) (string, bool) {
	result := gjson.Get(doc, path)
	if !result.Exists() {
		return "", false
	}
	return result.Raw, true
}

package store

import (
	"bytes"
	"encoding/json"

	"tableflip.dev/datekeeper/pkg/dataset"
)

// document is the on-disk layout of the data file.
type document struct {
	Dates      []record         `json:"dates"`
	Categories []categoryRecord `json:"categories"`
}

type record struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CreatedAt   string `json:"created_at"`

	// Group is the name older files used for the category.
	Group string `json:"group,omitempty"`
}

type categoryRecord struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// decode parses the data file. The returned flag is set when the file uses
// the legacy layout: a bare array of records with no category list.
func decode(data []byte) (document, bool, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return document{}, false, nil
	}
	if trimmed[0] == '[' {
		var records []record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return document{}, true, err
		}
		return document{Dates: records}, true, nil
	}
	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return document{}, false, err
	}
	return doc, false, nil
}

// encode renders ds as indented UTF-8 JSON. Entries are ordered by date then
// name and categories by name so that encoding a loaded dataset reproduces
// the file byte for byte.
func encode(ds dataset.Dataset) ([]byte, error) {
	ds = ds.Clone()
	ds.Sort()

	doc := document{
		Dates:      make([]record, 0, len(ds.Entries)),
		Categories: make([]categoryRecord, 0, len(ds.Categories)),
	}
	for _, e := range ds.Entries {
		doc.Dates = append(doc.Dates, record{
			Name:        e.Name,
			Date:        e.Date.String(),
			Description: e.Description,
			Category:    e.Category,
			CreatedAt:   e.CreatedAt.String(),
		})
	}
	for _, c := range ds.Categories {
		doc.Categories = append(doc.Categories, categoryRecord{
			Name:  c.Name,
			Color: c.Color.String(),
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package collection

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// schema lists the keys a JSON object must carry with a non-null value.
// Keys in items name arrays whose elements are checked against a nested
// schema; an absent or null array listed only in items is allowed.
type schema struct {
	required []string
	items    map[string]schema
}

var (
	indexSchema = schema{required: []string{"total", "objectIDs"}}

	departmentsSchema = schema{
		required: []string{"departments"},
		items: map[string]schema{
			"departments": {required: []string{"departmentId", "displayName"}},
		},
	}

	objectSchema = schema{
		required: []string{
			"objectID", "isHighlight", "accessionNumber", "accessionYear",
			"isPublicDomain", "primaryImage", "primaryImageSmall", "additionalImages",
			"constituents", "department", "objectName", "title", "culture", "period",
			"artistRole", "artistDisplayName", "artistDisplayBio", "artistAlphaSort",
			"artistNationality", "artistBeginDate", "artistEndDate", "artistGender",
			"artistWikidata_URL", "artistULAN_URL", "objectDate", "objectBeginDate",
			"objectEndDate", "medium", "dimensions", "measurements", "creditLine",
			"classification", "rightsAndReproduction", "linkResource", "metadataDate",
			"repository", "objectURL", "objectWikidata_URL", "isTimelineWork",
		},
		items: map[string]schema{
			"constituents": {required: []string{
				"constituentID", "role", "name",
				"constituentULAN_URL", "constituentWikidata_URL", "gender",
			}},
			"measurements": {required: []string{"elementName", "elementMeasurements"}},
			"tags":         {required: []string{"term", "AAT_URL", "Wikidata_URL"}},
		},
	}
)

var jsonNull = []byte("null")

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

// check validates raw against s. path prefixes field names in errors.
func (s schema) check(raw json.RawMessage, path string) error {
	if isNull(raw) {
		return fmt.Errorf("%s: expected object, got null", describe(path))
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("%s: %w", describe(path), err)
	}

	for _, key := range s.required {
		value, ok := fields[key]
		if !ok {
			return fmt.Errorf("missing required field %q", path+key)
		}
		if isNull(value) {
			return fmt.Errorf("required field %q is null", path+key)
		}
	}

	for key, elem := range s.items {
		value, ok := fields[key]
		if !ok || isNull(value) {
			continue
		}
		var entries []json.RawMessage
		if err := json.Unmarshal(value, &entries); err != nil {
			return fmt.Errorf("field %q: %w", path+key, err)
		}
		for i, entry := range entries {
			if err := elem.check(entry, fmt.Sprintf("%s%s[%d].", path, key, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func describe(path string) string {
	if path == "" {
		return "body"
	}
	return path[:len(path)-1]
}

package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Collection names as they appear in the source document.
const (
	CollectionCommissions  = "commissions"
	CollectionUsers        = "users"
	CollectionTrainings    = "trainings"
	CollectionSalesDetails = "salesDetails"
	// CollectionProducts is accepted in place of salesDetails by older exports.
	CollectionProducts = "products"
)

// Entry is one keyed record of a collection, still in its wire form.
type Entry struct {
	ID  string
	Raw json.RawMessage
}

// Collection keeps the key order of the document it was decoded from.
type Collection []Entry

// UnmarshalJSON accepts an object (id -> record), an array (index -> record, null
// slots skipped, the shape Firebase uses for sequential numeric keys) or null.
func (c *Collection) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read collection: %w", err)
	}
	if tok == nil {
		*c = nil
		return nil
	}

	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return fmt.Errorf("collection must be an object or array, got %v", tok)
	}

	var out Collection
	for i := 0; dec.More(); i++ {
		id := strconv.Itoa(i)
		if delim == '{' {
			keyTok, err := dec.Token()
			if err != nil {
				return fmt.Errorf("read collection key: %w", err)
			}
			id = keyTok.(string)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("read collection entry %q: %w", id, err)
		}
		if delim == '[' && bytes.Equal(raw, []byte("null")) {
			continue
		}
		out = append(out, Entry{ID: id, Raw: raw})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read collection end: %w", err)
	}

	*c = out
	return nil
}

// MarshalJSON writes the collection back as an object in its original order.
func (c Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.ID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if len(e.Raw) == 0 {
			buf.WriteString("null")
			continue
		}
		buf.Write(e.Raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Snapshot is a point-in-time read of the four input collections.
type Snapshot struct {
	Commissions  Collection
	Users        Collection
	Trainings    Collection
	SalesDetails Collection
	// Diagnostics lists the collections that could not be read and why.
	Diagnostics []string
}

// Named returns the collections keyed by their source name.
func (s Snapshot) Named() map[string]Collection {
	return map[string]Collection{
		CollectionCommissions:  s.Commissions,
		CollectionUsers:        s.Users,
		CollectionTrainings:    s.Trainings,
		CollectionSalesDetails: s.SalesDetails,
	}
}

package project

import (
	"encoding/json"
	"fmt"
)

// Merge applies an imported backup onto the record. The merge is shallow at
// the top level: each key present in the import replaces that whole section,
// and sections absent from the import are left untouched. Nothing deeper is
// reconciled, so a partial backup can restore a single section.
func (r *Record) Merge(data []byte) error {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return fmt.Errorf("import: not a JSON object: %w", err)
	}

	base, err := json.Marshal(r)
	if err != nil {
		return err
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &merged); err != nil {
		return err
	}
	for k, v := range sections {
		merged[k] = v
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	var next Record
	if err := json.Unmarshal(out, &next); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	*r = next
	return nil
}

// Clone returns a deep copy of the record via the JSON codec. Edits work on
// a clone so a cancelled form never touches the live record.
func (r *Record) Clone() (*Record, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var out Record
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

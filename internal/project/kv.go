package project

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// KV is one key→value pair of a free-form figure block.
type KV struct {
	Key   string
	Value string
}

// KVList is an ordered list of key→value pairs that serializes as a JSON
// object. A plain map would lose insertion order, so the order-preserving
// list is the in-memory form and the object layout is only a wire concern.
// Duplicate keys follow last-write-wins: Set on an existing key overwrites
// in place, and decoding an object with repeated keys keeps the final value.
type KVList []KV

// Get returns the value for key and whether it is present.
func (l KVList) Get(key string) (string, bool) {
	for _, kv := range l {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Set overwrites the value for an existing key, or appends a new pair.
func (l KVList) Set(key, value string) KVList {
	for i := range l {
		if l[i].Key == key {
			l[i].Value = value
			return l
		}
	}
	return append(l, KV{Key: key, Value: value})
}

// MarshalJSON writes the pairs as a JSON object in list order.
func (l KVList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving key order as encountered.
// Repeated keys overwrite the earlier value but keep its original position.
func (l *KVList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("kvlist: expected object, got %v", tok)
	}

	out := KVList{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("kvlist: non-string key %v", keyTok)
		}

		var val string
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("kvlist: value for %q: %w", key, err)
		}
		out = out.Set(key, val)
	}

	if _, err := dec.Token(); err != nil { // closing brace
		return err
	}

	*l = out
	return nil
}

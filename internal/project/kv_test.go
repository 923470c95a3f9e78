package project

import (
	"encoding/json"
	"testing"
)

func TestKVListRoundTripPreservesOrder(t *testing.T) {
	in := KVList{
		{"Zulu", "1"},
		{"Alpha", "2"},
		{"Mike", "3"},
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Zulu":"1","Alpha":"2","Mike":"3"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var out KVList
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("pair %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestKVListDuplicateKeysLastWriteWins(t *testing.T) {
	var l KVList
	if err := json.Unmarshal([]byte(`{"a":"1","b":"2","a":"3"}`), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(l) != 2 {
		t.Fatalf("len = %d, want 2", len(l))
	}
	if v, _ := l.Get("a"); v != "3" {
		t.Errorf("a = %q, want %q", v, "3")
	}
	if l[0].Key != "a" {
		t.Errorf("first key = %q, want duplicate to keep original position", l[0].Key)
	}
}

func TestKVListSet(t *testing.T) {
	l := KVList{{"a", "1"}}
	l = l.Set("b", "2")
	l = l.Set("a", "9")
	if len(l) != 2 {
		t.Fatalf("len = %d, want 2", len(l))
	}
	if v, _ := l.Get("a"); v != "9" {
		t.Errorf("a = %q, want overwrite in place", v)
	}
	if l[1] != (KV{"b", "2"}) {
		t.Errorf("l[1] = %+v", l[1])
	}
}

func TestKVListRejectsNonObject(t *testing.T) {
	var l KVList
	if err := json.Unmarshal([]byte(`["a","b"]`), &l); err == nil {
		t.Fatal("expected error for array input")
	}
}

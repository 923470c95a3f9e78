package project

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRecordRoundTrip(t *testing.T) {
	r := DefaultRecord()
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(r, &back) {
		t.Error("record changed across a marshal/unmarshal cycle")
	}
}

func TestMergeIsShallow(t *testing.T) {
	r := DefaultRecord()
	before, err := r.Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}

	// A general section with only one changed field. Shallow merge replaces
	// the whole section, so the other general fields come from the import
	// too; sections absent from the import stay as they were.
	general := before.General
	general.LivingArea = 999
	imp, err := json.Marshal(map[string]any{"general": general})
	if err != nil {
		t.Fatalf("marshal import: %v", err)
	}
	if err := r.Merge(imp); err != nil {
		t.Fatalf("merge: %v", err)
	}

	if r.General.LivingArea != 999 {
		t.Errorf("LivingArea = %v, want 999", r.General.LivingArea)
	}
	want := before
	want.General.LivingArea = 999
	if !reflect.DeepEqual(r, want) {
		t.Error("merge touched sections outside the import")
	}
}

func TestMergeSectionReplacement(t *testing.T) {
	r := DefaultRecord()
	imp := []byte(`{"aides":[{"nom":"Only one","organisme":"X","montantDemande":100,"montantRecu":0,"statut":"demande","conditions":"","details":""}]}`)
	if err := r.Merge(imp); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(r.Subsidies) != 1 || r.Subsidies[0].Name != "Only one" {
		t.Errorf("Subsidies = %+v, want the imported list to replace the section", r.Subsidies)
	}
}

func TestMergeRejectsGarbage(t *testing.T) {
	r := DefaultRecord()
	before, _ := r.Clone()
	if err := r.Merge([]byte(`not json`)); err == nil {
		t.Fatal("expected error")
	}
	if !reflect.DeepEqual(r, before) {
		t.Error("failed merge must leave the record untouched")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	r := DefaultRecord()
	c, err := r.Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	c.WorkItems[0].Spent = 123456
	if r.WorkItems[0].Spent == 123456 {
		t.Error("clone shares backing storage with the original")
	}
}

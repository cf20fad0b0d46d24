package models

import (
	"reflect"
	"testing"
)

func TestQueryRecordCopiesInput(t *testing.T) {
	src := map[string]string{"Name": "Peter Parker", "age": "38"}
	rec := NewQueryRecord("person", src)

	src["age"] = "99"
	src["extra"] = "x"

	if v, ok := rec.Get("age"); !ok || v != "38" {
		t.Errorf("Get(age) = %q, %v, want 38, true", v, ok)
	}
	if _, ok := rec.Get("extra"); ok {
		t.Error("record picked up a key added to the source map")
	}
	if rec.Len() != 2 {
		t.Errorf("Len() = %d, want 2", rec.Len())
	}
}

func TestQueryRecordLowercasesKeys(t *testing.T) {
	rec := NewQueryRecord("person", map[string]string{"Name": "Peter Parker"})
	if _, ok := rec.Get("name"); !ok {
		t.Error("Get(name) missed a key stored as Name")
	}
	if _, ok := rec.Get("Name"); ok {
		t.Error("Get(Name) should miss; callers normalize keys first")
	}
}

func TestQueryRecordKeysSorted(t *testing.T) {
	rec := NewQueryRecord("x", map[string]string{"b": "2", "a": "1", "c": "3"})
	if got := rec.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Keys() = %v", got)
	}
	if rec.Name() != "x" {
		t.Errorf("Name() = %q", rec.Name())
	}
}

package resolver

import (
	"context"
	"testing"

	"github.com/korjavin/drills/models"
)

func TestLocalResolvesEveryPresentKey(t *testing.T) {
	fields := map[string]string{
		"name":  "Peter Parker",
		"age":   "38",
		"phone": "(610) 387-5172",
	}
	l := NewLocal(models.NewQueryRecord("person", fields))

	for key, want := range fields {
		res, err := l.Resolve(context.Background(), key)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", key, err)
		}
		if !res.Found || res.Value != want {
			t.Errorf("Resolve(%q) = %+v, want %q", key, res, want)
		}
	}
}

func TestLocalNormalizesKey(t *testing.T) {
	l := NewLocal(models.NewQueryRecord("person", map[string]string{"phone": "(610) 387-5172"}))
	res, _ := l.Resolve(context.Background(), "  PHONE \t")
	if !res.Found || res.Value != "(610) 387-5172" {
		t.Errorf("Resolve(PHONE) = %+v", res)
	}
	if res.Key != "phone" {
		t.Errorf("Key = %q, want phone", res.Key)
	}
}

func TestLocalAbsentKeyIsNotAnError(t *testing.T) {
	rec := models.NewQueryRecord("person", map[string]string{"phone": "x"})
	l := NewLocal(rec)
	for _, key := range []string{"might", "", "phone number", "Phone?"} {
		res, err := l.Resolve(context.Background(), key)
		if err != nil {
			t.Errorf("Resolve(%q) returned error %v", key, err)
		}
		if res.Found {
			t.Errorf("Resolve(%q) = %+v, want not found", key, res)
		}
	}
	if rec.Len() != 1 {
		t.Errorf("record changed size: %d", rec.Len())
	}
}

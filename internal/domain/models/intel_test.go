package models

import (
	"reflect"
	"testing"
)

func TestIntelCollectionMerge(t *testing.T) {
	c := IntelCollection{UPIIDs: []string{"a@ybl"}, Phones: []string{"+919876543210"}}

	c.Merge(IntelCollection{
		UPIIDs:       []string{"b@paytm", "a@ybl"},
		Links:        []string{"https://x.example.com"},
		BankAccounts: []string{"123456789"},
	})

	want := IntelCollection{
		UPIIDs:       []string{"a@ybl", "b@paytm"},
		Phones:       []string{"+919876543210"},
		Links:        []string{"https://x.example.com"},
		BankAccounts: []string{"123456789"},
	}
	if !reflect.DeepEqual(c, want) {
		t.Errorf("merged = %+v, want %+v", c, want)
	}
}

func TestIntelCollectionMergeIdempotent(t *testing.T) {
	other := IntelCollection{UPIIDs: []string{"a@ybl"}, Phones: []string{"919876543210"}}

	var c IntelCollection
	c.Merge(other)
	first := c
	c.Merge(other)

	if !reflect.DeepEqual(c, first) {
		t.Errorf("second merge changed the collection: %+v", c)
	}
}

func TestIntelCollectionIsEmpty(t *testing.T) {
	var c IntelCollection
	if !c.IsEmpty() {
		t.Error("zero collection should be empty")
	}
	c.Merge(IntelCollection{Links: []string{"https://x.example.com"}})
	if c.IsEmpty() {
		t.Error("collection with a link should not be empty")
	}
}

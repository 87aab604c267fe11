package main

import (
	"bytes"
	"encoding/json"
	"testing"
)

// captureDiag redirects the diagnostic stream for one test.
func captureDiag(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := diag
	diag = &buf
	t.Cleanup(func() { diag = old })
	return &buf
}

// rawData builds a section data map from plain Go values.
func rawData(t *testing.T, m map[string]any) map[string]json.RawMessage {
	t.Helper()
	ret := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		ret[k] = b
	}
	return ret
}

func loadTestDoc(t *testing.T) Document {
	t.Helper()
	doc, err := LoadDocument("testfiles/h2o.json")
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestLoadDocument(t *testing.T) {
	doc := loadTestDoc(t)
	if len(doc) != 6 {
		t.Fatalf("got %d programs, wanted 6", len(doc))
	}
	want := []string{"xjoda", "xvscf", "xncc", "xvcc", "xvee", "xjoda"}
	for i, name := range want {
		if doc[i].Name != name {
			t.Errorf("program %d: got %q, wanted %q", i, doc[i].Name, name)
		}
	}
}

func TestProgram(t *testing.T) {
	doc := loadTestDoc(t)
	xjoda, ok := doc.Program("xjoda")
	if !ok {
		t.Fatal("xjoda not found")
	}
	if got := len(xjoda.Sections); got != 3 {
		t.Errorf("got %d sections, wanted 3", got)
	}
	if _, ok := doc.Program("xdqcscf"); ok {
		t.Error("found xdqcscf in a document without one")
	}
	scf, ok := doc.Program("xvscf", "xdqcscf")
	if !ok || scf.Name != "xvscf" {
		t.Errorf("got %v, wanted xvscf", scf)
	}
}

func TestLastProgram(t *testing.T) {
	doc := loadTestDoc(t)
	xjoda, ok := doc.LastProgram("xjoda")
	if !ok {
		t.Fatal("xjoda not found")
	}
	// the last xjoda is the one carrying the normal coordinates
	if s := FirstSection(xjoda.Sections, "normal coordinates"); s == nil {
		t.Error("LastProgram returned the first xjoda")
	}
	if _, ok := doc.LastProgram("xdummy"); ok {
		t.Error("found a program that does not exist")
	}
}

func TestPrograms(t *testing.T) {
	doc := loadTestDoc(t)
	if got := len(doc.Programs("xjoda")); got != 2 {
		t.Errorf("got %d xjoda runs, wanted 2", got)
	}
	if got := doc.Programs("nope"); got != nil {
		t.Errorf("got %v, wanted nil", got)
	}
}

func nestedSections() []Section {
	return []Section{
		{Name: "a", Sections: []Section{
			{Name: "b"},
			{Name: "a", Sections: []Section{
				{Name: "b"},
			}},
		}},
		{Name: "b", Sections: []Section{
			{Name: "a"},
		}},
	}
}

func TestAllSections(t *testing.T) {
	secs := nestedSections()
	got := AllSections(secs, "a")
	if len(got) != 3 {
		t.Fatalf("got %d sections, wanted 3", len(got))
	}
	// depth-first, sibling order
	if got[0] != &secs[0] ||
		got[1] != &secs[0].Sections[1] ||
		got[2] != &secs[1].Sections[0] {
		t.Errorf("sections out of document order: %v", got)
	}
}

func TestFirstLastSection(t *testing.T) {
	secs := nestedSections()
	if got := FirstSection(secs, "b"); got != &secs[0].Sections[0] {
		t.Errorf("FirstSection: got %v", got)
	}
	if got := LastSection(secs, "b"); got != &secs[1] {
		t.Errorf("LastSection: got %v", got)
	}
	if got := FirstSection(secs, "c"); got != nil {
		t.Errorf("got %v, wanted nil", got)
	}
	if got := LastSection(secs, "c"); got != nil {
		t.Errorf("got %v, wanted nil", got)
	}
}

func TestSpan(t *testing.T) {
	start, end := 12, 86
	tests := []struct {
		sec        Section
		start, end int
	}{
		{Section{Start: &start, End: &end}, 12, 86},
		{Section{}, 0, -1},
		{Section{Start: &start}, 12, -1},
	}
	for _, test := range tests {
		s, e := test.sec.Span()
		if s != test.start || e != test.end {
			t.Errorf("got %d-%d, wanted %d-%d",
				s, e, test.start, test.end)
		}
	}
}

func TestDataField(t *testing.T) {
	doc := loadTestDoc(t)
	xjoda, _ := doc.Program("xjoda")
	var status int
	if !dataField(xjoda.Data, "exit status", &status) || status != 0 {
		t.Errorf("exit status: got %d", status)
	}
	// missing member
	if dataField(xjoda.Data, "no such key", &status) {
		t.Error("decoded a member that does not exist")
	}
	// wrong shape
	var s string
	if dataField(xjoda.Data, "exit status", &s) {
		t.Error("decoded an int member into a string")
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// diag is the stream for warnings and other diagnostics. Data output
// never goes here.
var diag io.Writer = os.Stderr

// Document is a parsed CFOUR output file: the ordered list of program
// executions (xjoda, xvscf, xncc, ...) emitted by the upstream parser.
type Document []Program

type Program struct {
	Name     string                     `json:"name"`
	Data     map[string]json.RawMessage `json:"data"`
	Sections []Section                  `json:"sections"`
}

// Section is one block of a program's listing. Sections nest. Line
// markers are optional; the parser omits them for blocks it
// reconstructed.
type Section struct {
	Name     string                     `json:"name"`
	Start    *int                       `json:"start,omitempty"`
	End      *int                       `json:"end,omitempty"`
	Metadata Metadata                   `json:"metadata"`
	Data     map[string]json.RawMessage `json:"data"`
	Sections []Section                  `json:"sections"`
}

type Metadata struct {
	OK bool `json:"ok"`
}

// Span reports the output lines the section was read from, falling back
// to 0/-1 when the parser did not record them.
func (s *Section) Span() (start, end int) {
	start, end = 0, -1
	if s.Start != nil {
		start = *s.Start
	}
	if s.End != nil {
		end = *s.End
	}
	return start, end
}

func LoadDocument(filename string) (Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var doc Document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return doc, nil
}

// Program returns the first program matching one of names.
func (d Document) Program(names ...string) (*Program, bool) {
	for i := range d {
		for _, name := range names {
			if d[i].Name == name {
				return &d[i], true
			}
		}
	}
	return nil, false
}

// LastProgram returns the last program matching name. Jobs that rerun a
// program (e.g. geometry optimizations) list it several times and the
// final run is usually the one that matters.
func (d Document) LastProgram(name string) (*Program, bool) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i].Name == name {
			return &d[i], true
		}
	}
	return nil, false
}

// Programs returns every program matching one of names, in document
// order.
func (d Document) Programs(names ...string) []*Program {
	var ret []*Program
	for i := range d {
		for _, name := range names {
			if d[i].Name == name {
				ret = append(ret, &d[i])
				break
			}
		}
	}
	return ret
}

// AllSections returns every section named name, searching secs and
// their nested sections depth-first in sibling order.
func AllSections(secs []Section, name string) []*Section {
	var ret []*Section
	for i := range secs {
		if secs[i].Name == name {
			ret = append(ret, &secs[i])
		}
		ret = append(ret, AllSections(secs[i].Sections, name)...)
	}
	return ret
}

// FirstSection returns the first section named name in depth-first
// order, or nil.
func FirstSection(secs []Section, name string) *Section {
	for i := range secs {
		if secs[i].Name == name {
			return &secs[i]
		}
		if s := FirstSection(secs[i].Sections, name); s != nil {
			return s
		}
	}
	return nil
}

// LastSection returns the last section named name in depth-first order,
// or nil.
func LastSection(secs []Section, name string) *Section {
	all := AllSections(secs, name)
	if len(all) == 0 {
		return nil
	}
	return all[len(all)-1]
}

// dataField decodes the named member of a data map into v. A missing
// member, or one with the wrong shape, reports false so that callers
// see a uniform "no data" instead of a panic.
func dataField(data map[string]json.RawMessage, key string, v any) bool {
	raw, ok := data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

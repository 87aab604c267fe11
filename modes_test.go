package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPointGroup(t *testing.T) {
	doc := loadTestDoc(t)
	if got := PointGroup(doc); got != "C2v" {
		t.Errorf("got %q, wanted C2v", got)
	}
}

func TestPointGroupMissing(t *testing.T) {
	captureDiag(t)
	if got := PointGroup(Document{}); got != "" {
		t.Errorf("got %q, wanted empty", got)
	}
}

func TestNormalCoordinates(t *testing.T) {
	doc := loadTestDoc(t)
	modes := NormalCoordinates(doc)
	if len(modes) != 3 {
		t.Fatalf("got %d modes, wanted 3", len(modes))
	}
	want := Mode{
		Symmetry:  "A1",
		Frequency: 1648.47,
		Kind:      "vibration",
		Coordinate: []ModeAtom{
			{Symbol: "O", Z: 0.0702},
			{Symbol: "H", Y: -0.4298, Z: -0.5572},
			{Symbol: "H", Y: 0.4298, Z: -0.5572},
		},
	}
	if diff := cmp.Diff(want, modes[0]); diff != "" {
		t.Errorf("first mode mismatch (-want +got):\n%s", diff)
	}
}

func TestSortMulliken(t *testing.T) {
	modes := []Mode{
		{Symmetry: "B2u", Frequency: 500},
		{Symmetry: "Ag", Frequency: 300},
		{Symmetry: "Ag", Frequency: 700},
		{Symmetry: "B3u", Frequency: 100},
	}
	SortMulliken("D2h", modes)
	want := []float64{700, 300, 500, 100}
	for i, mode := range modes {
		if mode.Frequency != want[i] {
			t.Errorf("mode %d: got %v, wanted %v",
				i, mode.Frequency, want[i])
		}
	}
}

// anything but D2h keeps the listing order
func TestSortMullikenOtherGroup(t *testing.T) {
	modes := []Mode{
		{Symmetry: "B2", Frequency: 500},
		{Symmetry: "A1", Frequency: 300},
	}
	SortMulliken("C2v", modes)
	if modes[0].Symmetry != "B2" || modes[1].Symmetry != "A1" {
		t.Errorf("order changed: %v", modes)
	}
}

func TestXsimModes(t *testing.T) {
	doc := loadTestDoc(t)
	got := XsimModes(NormalCoordinates(doc))
	if len(got) != 3 {
		t.Fatalf("got %d modes, wanted 3", len(got))
	}
	wantCoord := [][]float64{
		{0, 0, 0.0702},
		{0, -0.4298, -0.5572},
		{0, 0.4298, -0.5572},
	}
	if diff := cmp.Diff(wantCoord, got[0].Coordinate); diff != "" {
		t.Errorf("coordinate mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteModeTable(t *testing.T) {
	modes := []Mode{{
		Symmetry:  "A1",
		Frequency: 1648.47,
		Kind:      "vibration",
		Coordinate: []ModeAtom{
			{Symbol: "O", Z: 0.0702},
		},
	}}
	var buf bytes.Buffer
	WriteModeTable(&buf, "C2v", modes, 2, false)
	got := buf.String()
	want := `Computational point group: C2v
Normal Coordinates:
  0: A1  Vibration, 1648.47
  O   0.0000  0.0000  0.0702
`
	if got != want {
		t.Errorf("got\n%v, wanted\n%v\n", got, want)
	}
}

func TestWriteModesXYZ(t *testing.T) {
	geo := Geometry{Atoms: []Atom{
		{Symbol: "O", Coordinates: []float64{0, 0, 0.1}},
		{Symbol: "H", Coordinates: []float64{0, 0.75, -0.45}},
	}}
	modes := []Mode{{
		Symmetry:  "A1",
		Frequency: 1648.5,
		Kind:      "vibration",
		Coordinate: []ModeAtom{
			{Symbol: "O", Z: 0.07},
			{Symbol: "H", Y: -0.43, Z: -0.56},
		},
	}}
	var buf bytes.Buffer
	WriteModesXYZ(&buf, geo, modes, false)
	got := buf.String()
	want := `2
  0. Vibration mode, 1648.5 cm-1, A1
O   0.000000  0.000000  0.100000  0.00000  0.00000  0.07000
H   0.000000  0.750000 -0.450000  0.00000 -0.43000 -0.56000
`
	if got != want {
		t.Errorf("got\n%v, wanted\n%v\n", got, want)
	}
}

// a geometry/mode atom-order mismatch is diagnosed but still printed
func TestWriteModesXYZMismatch(t *testing.T) {
	buf := captureDiag(t)
	geo := Geometry{Atoms: []Atom{
		{Symbol: "O", Coordinates: []float64{0, 0, 0}},
	}}
	modes := []Mode{{
		Symmetry:   "A1",
		Kind:       "vibration",
		Coordinate: []ModeAtom{{Symbol: "H"}},
	}}
	var out bytes.Buffer
	WriteModesXYZ(&out, geo, modes, false)
	if !bytes.Contains(buf.Bytes(), []byte("Mismatch")) {
		t.Errorf("missing warning, got %q", buf.String())
	}
	if out.Len() == 0 {
		t.Error("no output written")
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	captureDiag(t)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestIrrepsCommand(t *testing.T) {
	got := execute(t, "irreps", "testfiles/h2o.json")
	want := ` 1: A1
 2: A2
 3: B1
 4: B2
`
	if got != want {
		t.Errorf("got\n%v, wanted\n%v\n", got, want)
	}
}

func TestRootsCommandJSON(t *testing.T) {
	got := execute(t, "roots", "--json", "testfiles/h2o.json")
	defer func() { rootsJSON = false }()
	var roots []Root
	if err := json.Unmarshal([]byte(got), &roots); err != nil {
		t.Fatal(err)
	}
	if len(roots) != 3 {
		t.Fatalf("got %d roots, wanted 3", len(roots))
	}
	if roots[0].Irrep.Name != "A1" || roots[0].IDs.EnergyNo != 0 {
		t.Errorf("first root: %+v", roots[0])
	}
}

func TestXVEECommandSummary(t *testing.T) {
	got := execute(t, "xvee", "-s", "testfiles/h2o.json")
	defer func() { xveeSummary = 0 }()
	want := ` 0: Root  1/2: 0 A1  (irrep #1):  7.742 eV (-75.956 Ha).
 1: Root  2/2: 0 A2  (irrep #2):  8.982 eV (-75.910 Ha).
`
	if got != want {
		t.Errorf("got\n%v, wanted\n%v\n", got, want)
	}
}

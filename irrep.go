package main

import (
	"errors"
	"fmt"
)

var ErrUnknownIrrep = errors.New("no symmetry name for irrep")

// IrrepTable maps CFOUR's computational-symmetry irrep numbers to their
// names (Ag, B3u, ...). CFOUR reports states by number only, so every
// enriched record depends on this table.
type IrrepTable map[int]string

type mo struct {
	Compsymm struct {
		No   int    `json:"#"`
		Name string `json:"name"`
	} `json:"compsymm"`
}

// add records the pairing from a single MO row. CFOUR is inconsistent
// in printing the symmetry labels: continuation rows carry a partial or
// empty name for a number that was already listed in full, e.g.
//
//	170   166     1.3838715734    37.6570579119   B1    B1 (2)
//	171   232     1.3909106293    37.8486003507    2     2 (3)
//	177   233     1.4920006032    40.5993982375           (3)
//
// so the first name seen for a number is taken as authoritative and
// later rows are ignored without a consistency check.
func (t IrrepTable) add(m mo) {
	if _, ok := t[m.Compsymm.No]; !ok {
		t[m.Compsymm.No] = m.Compsymm.Name
	}
}

// BuildIrrepTable scans the MO listings of every SCF program in the
// document. A listing marked not-ok still contributes whatever rows it
// has; the mislabeling risk is low and a partial table beats none.
func BuildIrrepTable(doc Document) IrrepTable {
	table := make(IrrepTable)
	for _, prog := range doc.Programs("xvscf", "xdqcscf") {
		for _, sec := range AllSections(prog.Sections, "MOs") {
			if !sec.Metadata.OK {
				fmt.Fprintln(diag, "Warning: Listing of MOs contains"+
					" errors. Irrep names might be incorrect. (low risk)")
			}
			var occupied, virtual []mo
			dataField(sec.Data, "occupied", &occupied)
			dataField(sec.Data, "virtual", &virtual)
			for _, m := range occupied {
				table.add(m)
			}
			for _, m := range virtual {
				table.add(m)
			}
		}
	}
	return table
}

// Name resolves an irrep number. An unknown number is the one
// unrecoverable condition of the whole run.
func (t IrrepTable) Name(no int) (string, error) {
	name, ok := t[no]
	if !ok {
		return "", fmt.Errorf("%w #%d", ErrUnknownIrrep, no)
	}
	return name, nil
}

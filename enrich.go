package main

import "sort"

// SortByEnergy stable-sorts roots ascending by total energy. Stability
// keeps the insertion-order ids as the tie-break for display.
func SortByEnergy(roots []Root) {
	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].Energy.Total.AU < roots[j].Energy.Total.AU
	})
}

// AssignIDs gives every root its insertion-order id, then sorts by
// total energy and records the rank as the energy id.
func AssignIDs(roots []Root) {
	for i := range roots {
		roots[i].IDs.No = i
	}
	SortByEnergy(roots)
	for i := range roots {
		roots[i].IDs.EnergyNo = i
	}
}

// ResolveIrreps fills in each root's irrep name from table and assigns
// the per-irrep energy number: a zero-based counter per irrep, taken in
// the energy-sorted order the roots are already in after AssignIDs. An
// irrep number the table cannot resolve halts the run.
func ResolveIrreps(roots []Root, table IrrepTable) error {
	counters := make(map[int]int)
	for i := range roots {
		no := roots[i].Irrep.No
		name, err := table.Name(no)
		if err != nil {
			return err
		}
		roots[i].Irrep.Name = name
		roots[i].Irrep.EnergyNo = counters[no]
		counters[no]++
	}
	return nil
}

// AddExcitation computes every root's excitation energy against a
// ground-state reference energy in au.
func AddExcitation(roots []Root, refAU float64) {
	for i := range roots {
		au := roots[i].Energy.Total.AU - refAU
		roots[i].Energy.Excitation = &Excitation{
			AU: au,
			EV: au * auToEV,
		}
	}
}

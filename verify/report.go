// SPDX-License-Identifier: MIT

package verify

import "github.com/katalvlaran/pauli/pauli"

// Result is the outcome of one named check.
type Result struct {
	Name   string
	Passed bool
	Err    error // non-nil only on caller misuse; Passed is false then
}

// Report is an ordered list of check results.
type Report []Result

// Failed returns the number of results that did not pass.
func (r Report) Failed() int {
	n := 0
	for _, res := range r {
		if !res.Passed {
			n++
		}
	}

	return n
}

// OK reports whether every check passed.
func (r Report) OK() bool { return r.Failed() == 0 }

// Report runs every check over every index and ordered pair.
// The order is fixed: per-matrix facts, product rule, commutators,
// anticommutators, ladder identities. Checks share no state.
//
// Complexity:
//   - 42 checks of O(1) each; one growing slice for the results.
func (v *Verifier) Report() Report {
	var out Report
	add := func(name string, ok bool, err error) {
		out = append(out, Result{Name: name, Passed: ok && err == nil, Err: err})
	}

	for _, p := range pauli.Indices() {
		ok, err := v.Unitary(p)
		add("unitary/"+p.String(), ok, err)
		ok, err = v.Hermitian(p)
		add("hermitian/"+p.String(), ok, err)
		ok, err = v.Involutory(p)
		add("involutory/"+p.String(), ok, err)
		ok, err = v.DeterminantIsMinusOne(p)
		add("det=-1/"+p.String(), ok, err)
		ok, err = v.Traceless(p)
		add("traceless/"+p.String(), ok, err)
	}
	for _, a := range pauli.Indices() {
		for _, b := range pauli.Indices() {
			if a == b {
				continue
			}
			ok, err := v.ProductRule(a, b)
			add("product/"+a.String()+b.String(), ok, err)
		}
	}
	for _, i := range pauli.Indices() {
		for _, j := range pauli.Indices() {
			ok, err := v.CommutatorIdentity(i, j)
			add("commutator/["+i.String()+","+j.String()+"]", ok, err)
		}
	}
	for _, i := range pauli.Indices() {
		for _, j := range pauli.Indices() {
			ok, err := v.AnticommutatorIdentity(i, j)
			add("anticommutator/{"+i.String()+","+j.String()+"}", ok, err)
		}
	}
	add("ladder/anticommutator", v.LadderAnticommutator(), nil)
	add("ladder/raising-nilpotent", v.RaisingNilpotent(), nil)
	add("ladder/lowering-nilpotent", v.LoweringNilpotent(), nil)

	return out
}

// Package automaton simulates one-dimensional binary cellular automata with a
// configurable rule number, neighborhood radius and step count.
//
// What:
//
//   - State is an ordered sequence of binary cells on a circular lattice.
//   - Evolve applies a rule for an exact number of synchronous generations:
//     every cell of a generation is computed from the same snapshot of the
//     previous generation, and the neighborhood wraps past the boundaries so
//     edge cells behave like interior cells.
//
// Rule semantics:
//
//   - radius 1: the literature definition — the 3-cell neighborhood forms a
//     3-bit pattern, and the rule number's binary expansion is the lookup
//     table from pattern to output bit.
//   - radius r > 1: the rule table still reads the inner 3-cell triple, and
//     every cell farther out contributes through a parity mask:
//
//     out = table[s[i-1] s[i] s[i+1]] ⊕ s[i±2] ⊕ … ⊕ s[i±r]
//
//     At r=1 the mask is empty, so the construction is exactly the standard
//     rule. The mask cells are disjoint from the table input, which keeps the
//     iterated dynamics of the nonlinear rules near one-half ones density at
//     every supported radius; a wider radius widens the per-step light cone
//     from 1 to r cells. Note that a linear-table rule (rule 90 and kin)
//     stays fully additive under this construction, and on power-of-two
//     rings its iterated map is nilpotent; pick a nonlinear rule for any
//     digest-style workload.
//
// Errors:
//
//   - ErrEmptyState: the state has no cells.
//   - ErrBadCell: a cell holds a value other than 0 or 1.
//   - ErrBadRadius: radius < 1 or the neighborhood exceeds the lattice.
//   - ErrNegativeSteps: a negative generation count.
//
// Complexity: Evolve is O(steps × cells × radius) time, O(cells) memory.
package automaton

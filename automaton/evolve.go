package automaton

// ruleTable expands an elementary rule number into its 8-entry lookup table:
// entry p is the output bit for the 3-bit neighborhood pattern p.
func ruleTable(rule uint8) [8]uint8 {
	var tbl [8]uint8
	for p := 0; p < 8; p++ {
		tbl[p] = (rule >> p) & 1
	}
	return tbl
}

// Evolve returns the state after exactly steps synchronous generations of the
// given rule at the given neighborhood radius. The input state is never
// mutated; the result is a fresh State of the same length.
//
// Any rule byte is a valid lookup table; callers wanting the traffic-adaptive
// parameter contract should obtain (rule, radius, steps) from policy.Select.
// Complexity: O(steps × n × radius) time, O(n) memory.
func Evolve(s State, rule uint8, radius, steps int) (State, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	n := len(s)
	if radius < 1 || 2*radius+1 > n {
		return nil, ErrBadRadius
	}
	if steps < 0 {
		return nil, ErrNegativeSteps
	}

	tbl := ruleTable(rule)
	cur := s.Clone()
	next := make(State, n)
	for t := 0; t < steps; t++ {
		generation(cur, next, tbl, radius)
		cur, next = next, cur
	}

	return cur, nil
}

// generation writes one synchronous update of cur into next. All reads come
// from cur, so every cell sees the same prior-generation snapshot.
func generation(cur, next State, tbl [8]uint8, radius int) {
	n := len(cur)
	for i := 0; i < n; i++ {
		// The rule table reads the inner triple; cells at distance 2..radius
		// enter through the parity mask.
		out := tbl[cur[wrap(i-1, n)]<<2|cur[i]<<1|cur[wrap(i+1, n)]]
		for d := 2; d <= radius; d++ {
			out ^= cur[wrap(i-d, n)] ^ cur[wrap(i+d, n)]
		}
		next[i] = out
	}
}

// wrap maps an offset index onto the circular lattice.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

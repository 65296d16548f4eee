package collapse

// Run executes the solver to completion, contradiction, or budget
// exhaustion. Returns nil on success, ErrContradiction when a cell's
// possibility set empties, and ErrBudgetExhausted when the iteration cap
// is reached first.
//
// Run is deterministic: identical (width, height, tiles, rules, seed)
// always produce an identical collapse order and final grid. It is also
// single-use — calling Run again after the grid has finished returns the
// prior outcome without re-running.
func (g *Grid) Run() error {
	for {
		done, err := g.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Step performs one iteration of the main loop: select, collapse,
// propagate. It returns done=true when the grid has finished (err nil on
// success, the failure sentinel otherwise) and done=false while work
// remains. Callers wanting cooperative cancellation or timeouts loop
// over Step and check their own flag between calls; Run is exactly that
// loop with no flag.
func (g *Grid) Step() (done bool, err error) {
	if g.done {
		return true, g.runErr
	}

	target, found := g.selectCell()
	if !found {
		g.done = true
		g.complete = true

		return true, nil
	}

	if g.iterations >= g.maxIterations {
		return true, g.fail(ErrBudgetExhausted)
	}

	if err = g.collapseCell(target); err != nil {
		return true, g.fail(err)
	}
	if err = g.propagate(target); err != nil {
		return true, g.fail(err)
	}
	g.iterations++

	return false, nil
}

// fail records the terminal outcome and returns it.
func (g *Grid) fail(err error) error {
	g.done = true
	g.runErr = err

	return err
}

// selectCell performs the minimum-entropy scan. Every uncollapsed cell
// with at least one option is visited in row-major order and scored as
// optionCount + entropyJitter·draw (one sequence draw per cell); the
// cells scoring within entropyTolerance of the minimum form the
// candidate set, and one further draw picks uniformly among them.
//
// The jitter draw happens before the candidate set is built, so which
// equal-count cells tie is itself seed-dependent. That ordering is part
// of the algorithm's contract; do not reorder the draws.
//
// found is false when no uncollapsed cell remains, i.e. the grid is
// complete. In that case no draws are consumed.
func (g *Grid) selectCell() (idx int, found bool) {
	g.scores = g.scores[:0]
	g.scoredIdx = g.scoredIdx[:0]

	best := 0.0
	for i := range g.cells {
		c := &g.cells[i]
		if c.collapsed || len(c.options) == 0 {
			continue
		}
		score := float64(len(c.options)) + g.seq.Float64()*entropyJitter
		if !found || score < best {
			best = score
		}
		g.scores = append(g.scores, score)
		g.scoredIdx = append(g.scoredIdx, i)
		found = true
	}
	if !found {
		return 0, false
	}

	g.candidates = g.candidates[:0]
	for k, score := range g.scores {
		if score <= best+entropyTolerance {
			g.candidates = append(g.candidates, g.scoredIdx[k])
		}
	}

	return g.candidates[g.seq.Intn(len(g.candidates))], true
}

// collapseCell reduces the cell's possibility set to a single option,
// chosen by one sequence draw (consumed even when only one option
// remains, keeping the draw count fixed per choice). An already-empty
// option set here is a contradiction.
func (g *Grid) collapseCell(idx int) error {
	c := &g.cells[idx]
	if len(c.options) == 0 {
		return ErrContradiction
	}
	pick := c.options[g.seq.Intn(len(c.options))]
	c.options = c.options[:1]
	c.options[0] = pick
	c.collapsed = true

	return nil
}

// propagate re-constrains neighbors outward from the just-collapsed cell
// using an explicit LIFO worklist of cell indices: the most recently
// affected cell is processed next. For each popped cell, every in-bounds,
// uncollapsed orthogonal neighbor keeps only the options compatible with
// at least one of the popped cell's remaining options. A neighbor that
// shrank is pushed for further propagation; a neighbor left with nothing
// is a contradiction.
func (g *Grid) propagate(start int) error {
	g.work = append(g.work[:0], start)

	for len(g.work) > 0 {
		ci := g.work[len(g.work)-1]
		g.work = g.work[:len(g.work)-1]

		cx, cy := g.coordinate(ci)
		current := g.cells[ci].options

		for _, d := range orthOffsets {
			nx, ny := cx+d[0], cy+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			ni := g.index(nx, ny)
			nb := &g.cells[ni]
			if nb.collapsed {
				continue
			}

			// In-place filter: writes trail reads, order preserved.
			before := len(nb.options)
			kept := nb.options[:0]
			for _, t := range nb.options {
				if g.compatible(current, t) {
					kept = append(kept, t)
				}
			}
			if len(kept) == before {
				continue
			}
			if len(kept) == 0 {
				return ErrContradiction
			}
			nb.options = kept
			g.work = append(g.work, ni)
		}
	}

	return nil
}

// compatible reports whether tile t may neighbor at least one of the
// tiles in current, per the compiled rule matrix.
func (g *Grid) compatible(current []int, t int) bool {
	n := len(g.labels)
	for _, s := range current {
		if g.allowed[s*n+t] {
			return true
		}
	}

	return false
}

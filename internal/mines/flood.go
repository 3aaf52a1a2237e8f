package mines

// floodReveal opens the connected region of zero cells around origin and
// the numbered cells bordering it. origin must be a revealed safe zero.
//
// Cells are marked revealed before they are pushed, so each one enters the
// stack at most once and the walk terminates on the cyclic neighbor graph.
func (s *GameState) floodReveal(origin *Cell) {
	stack := []*Cell{origin}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for n := range s.neighbors(c.X, c.Y) {
			if n.Mine || n.State == Revealed {
				continue
			}
			if n.State == Flagged && s.Params.Rule != RuleThroughFlags {
				continue
			}
			n.State = Revealed
			if n.Adjacent == 0 {
				stack = append(stack, n)
			}
		}
	}
}

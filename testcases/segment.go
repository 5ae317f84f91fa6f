package testcases

var segmentCases = []TestCase{
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Steps:  star(32, 32, 28, 2),
	},
	{
		Name:   "reversed",
		Width:  64,
		Height: 64,
		Steps:  []Step{Segment{X0: 56, Y0: 8, X1: 8, Y1: 40, Weight: 2}},
	},
	{
		Name:   "steep_up",
		Width:  64,
		Height: 64,
		Steps:  []Step{Segment{X0: 20, Y0: 60, X1: 30, Y1: 4, Weight: 1}},
	},
}

// star draws segments from the centre to the 16 points at distance r
// along the border of a square, covering all eight octants.
func star(xc, yc, r, weight int) []Step {
	var steps []Step
	for _, d := range []int{-r, -r / 2, 0, r / 2} {
		steps = append(steps,
			Segment{X0: xc, Y0: yc, X1: xc + d, Y1: yc - r, Weight: weight},
			Segment{X0: xc, Y0: yc, X1: xc + r, Y1: yc + d, Weight: weight},
			Segment{X0: xc, Y0: yc, X1: xc - d, Y1: yc + r, Weight: weight},
			Segment{X0: xc, Y0: yc, X1: xc - r, Y1: yc - d, Weight: weight},
		)
	}
	return steps
}

package testcases

var fillCases = []TestCase{
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Steps:  []Step{FillRect{X: 10, Y: 10, W: 44, H: 44}},
	},
	{
		Name:   "square",
		Width:  64,
		Height: 64,
		Steps:  []Step{FillSquare{X: 20, Y: 12, Size: 24}},
	},
	{
		Name:   "overlap",
		Width:  64,
		Height: 64,
		Steps: []Step{
			Color("#ff0000"),
			FillRect{X: 8, Y: 8, W: 32, H: 32},
			Color("#0000ff"),
			FillRect{X: 24, Y: 24, W: 32, H: 32},
		},
	},
	{
		Name:   "empty",
		Width:  64,
		Height: 64,
		Steps: []Step{
			FillRect{X: 10, Y: 10, W: 0, H: 20},
			FillRect{X: 10, Y: 10, W: 20, H: 0},
		},
	},
	{
		Name:   "checkerboard",
		Width:  64,
		Height: 64,
		Steps:  checkerboard(8, 8),
	},
}

// checkerboard fills every other cell of an n×n grid of size×size squares.
func checkerboard(n, size int) []Step {
	var steps []Step
	for row := range n {
		for col := range n {
			if (row+col)%2 == 0 {
				steps = append(steps, FillSquare{X: col * size, Y: row * size, Size: size})
			}
		}
	}
	return steps
}

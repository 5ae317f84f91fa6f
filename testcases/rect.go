package testcases

var rectCases = []TestCase{
	{
		Name:   "outline",
		Width:  64,
		Height: 64,
		Steps:  []Step{Rect{X: 10, Y: 10, W: 40, H: 30, Weight: 1}},
	},
	{
		Name:   "thick",
		Width:  64,
		Height: 64,
		Steps:  []Step{Rect{X: 8, Y: 8, W: 44, H: 44, Weight: 6}},
	},
	{
		Name:   "nested",
		Width:  64,
		Height: 64,
		Steps: []Step{
			Color("#202020"),
			Rect{X: 4, Y: 4, W: 52, H: 52, Weight: 2},
			Color("#808080"),
			Rect{X: 14, Y: 14, W: 32, H: 32, Weight: 2},
			Color("#e0e0e0"),
			Rect{X: 24, Y: 24, W: 12, H: 12, Weight: 2},
		},
	},
	{
		Name:   "degenerate",
		Width:  64,
		Height: 64,
		Steps:  []Step{Rect{X: 20, Y: 20, W: 0, H: 0, Weight: 3}},
	},
}

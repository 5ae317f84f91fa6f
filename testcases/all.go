package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"fill":    fillCases,
	"line":    lineCases,
	"segment": segmentCases,
	"rect":    rectCases,
	"circle":  circleCases,
	"scale":   scaleCases,
	"complex": complexCases,
	"large":   largeCases,
}

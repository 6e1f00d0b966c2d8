package format

import (
	"github.com/fatih/color"
)

var (
	// Bright highlights text in the terminal
	Bright func(args ...interface{}) string

	// Green text color
	Green func(args ...interface{}) string

	// Red text color
	Red func(args ...interface{}) string

	// OK colors table rows for succeeded containers
	OK = color.New(color.FgGreen)

	// Failed colors table rows for failed containers
	Failed = color.New(color.FgRed)
)

func init() {
	Bright = color.New(color.FgHiWhite).SprintFunc()
	Green = OK.SprintFunc()
	Red = Failed.SprintFunc()
}

package args

import "github.com/fatih/color"

// Output colors. fatih/color disables them when stdout is not a terminal or
// NO_COLOR is set.
var (
	headingColor = color.New(color.FgCyan, color.Bold)
	nameColor    = color.New(color.Bold)
	dimColor     = color.New(color.FgHiBlack)
	countColor   = color.New(color.FgYellow)
	warnColor    = color.New(color.FgYellow)
)

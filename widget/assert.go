package widget

import "fmt"

// Assert panics when a caller contract is broken
// Contract violations are programmer errors and never surface as error values
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("widget: "+format, args...))
	}
}

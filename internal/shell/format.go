package shell

import (
	"strings"

	"roster/internal/app"
)

const rule = "-------------"

// Format renders a result as the lines printed to the user, without a
// trailing newline.
func Format(res app.Result) string {
	switch res.Kind {
	case app.ResultOK:
		return "OK"
	case app.ResultExit:
		return "Exiting"
	case app.ResultListing:
		var b strings.Builder
		b.WriteString(res.Title)
		b.WriteByte('\n')
		b.WriteString(rule)
		b.WriteByte('\n')
		for _, name := range res.Names {
			b.WriteString(name)
			b.WriteByte('\n')
		}
		b.WriteString(rule)
		return b.String()
	default:
		return res.Message
	}
}

package command

import (
	"strings"

	"github.com/samber/lo"

	"roster/internal/registry"
)

// Parse tokenizes line on whitespace and builds the matching Command.
// The command word is case-insensitive; the "to"/"from" keywords are not,
// and only the first whole-token occurrence splits name from department.
func Parse(line string) Command {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Error{Reason: reasonInvalid}
	}
	args := tokens[1:]

	switch strings.ToLower(tokens[0]) {
	case "add":
		p, errCmd := parseMembership(args, "to", usageAdd)
		if errCmd != nil {
			return *errCmd
		}
		return Add{Person: p}
	case "remove":
		p, errCmd := parseMembership(args, "from", usageRemove)
		if errCmd != nil {
			return *errCmd
		}
		return Remove{Person: p}
	case "list":
		if len(args) == 0 {
			return List{Selector: registry.AllSelector}
		}
		return List{Selector: strings.Join(args, " ")}
	case "exit":
		return Exit{}
	default:
		return Error{Reason: reasonInvalid}
	}
}

// parseMembership splits "<name...> keyword <department...>".
func parseMembership(args []string, keyword, usage string) (registry.Person, *Error) {
	if len(args) == 0 {
		return registry.Person{}, &Error{Reason: reasonNoName}
	}
	idx := lo.IndexOf(args, keyword)
	if idx <= 0 {
		return registry.Person{}, &Error{Reason: usage}
	}
	if idx == len(args)-1 {
		return registry.Person{}, &Error{Reason: reasonNoDepartment}
	}
	return registry.Person{
		Name:       strings.Join(args[:idx], " "),
		Department: strings.Join(args[idx+1:], " "),
	}, nil
}

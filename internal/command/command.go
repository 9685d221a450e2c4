// Package command turns a raw input line into a structured roster command.
package command

import "roster/internal/registry"

// Command is one of Add, Remove, List, Exit or Error.
type Command interface {
	command()
}

// Add records a membership.
type Add struct {
	Person registry.Person
}

// Remove drops a membership.
type Remove struct {
	Person registry.Person
}

// List selects either every employee (registry.AllSelector) or one department.
type List struct {
	Selector string
}

// Exit ends the session.
type Exit struct{}

// Error is a line that could not be parsed. Reason is shown to the user as is.
type Error struct {
	Reason string
}

func (Add) command() {}
func (Remove) command() {}
func (List) command() {}
func (Exit) command() {}
func (Error) command() {}

const (
	reasonInvalid      = "Invalid command"
	reasonNoName       = "No name provided"
	reasonNoDepartment = "No department provided"
	usageAdd           = "Usage: ADD <name> TO <department>"
	usageRemove        = "Usage: REMOVE <name> FROM <department>"
)

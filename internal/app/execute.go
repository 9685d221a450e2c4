package app

import (
	"fmt"

	"roster/internal/command"
)

// Execute parses one input line and applies it.
func (a *App) Execute(line string) Result {
	switch cmd := command.Parse(line).(type) {
	case command.Add:
		return a.Add(cmd.Person)
	case command.Remove:
		return a.Remove(cmd.Person)
	case command.List:
		return a.List(cmd.Selector)
	case command.Exit:
		a.log.Debug("exit requested")
		return Result{Kind: ResultExit}
	case command.Error:
		a.log.Debug("parse failed", "line", line, "reason", cmd.Reason)
		return Result{Kind: ResultError, Message: cmd.Reason}
	default:
		panic(fmt.Sprintf("app: unhandled command %T", cmd))
	}
}

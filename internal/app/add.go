package app

import "roster/internal/registry"

// Add records a membership. It never fails.
func (a *App) Add(p registry.Person) Result {
	a.reg.Add(p)
	a.log.Debug("membership added", "name", p.Name, "department", p.Department, "employees", a.reg.Len())
	return Result{Kind: ResultOK}
}

package app

import "roster/internal/registry"

// Remove drops a membership. Unknown memberships are accepted silently.
func (a *App) Remove(p registry.Person) Result {
	a.reg.Remove(p)
	a.log.Debug("membership removed", "name", p.Name, "department", p.Department, "employees", a.reg.Len())
	return Result{Kind: ResultOK}
}

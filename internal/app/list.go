package app

import (
	"fmt"

	"roster/internal/registry"
)

// List resolves a selector into a listing or a not-found result.
func (a *App) List(selector string) Result {
	names, ok := a.reg.List(selector)
	if selector == registry.AllSelector {
		if len(names) == 0 {
			return Result{Kind: ResultNotFound, Message: msgNoEmployees}
		}
		return Result{Kind: ResultListing, Title: titleAll, Names: names}
	}
	if !ok {
		a.log.Debug("department not found", "department", selector)
		return Result{Kind: ResultNotFound, Message: msgNoDepartment}
	}
	return Result{Kind: ResultListing, Title: fmt.Sprintf("%s department", selector), Names: names}
}

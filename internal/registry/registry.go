package registry

// Registry is an in-memory catalog of department memberships.
// The same relation is indexed twice, by department and by employee, and the
// roster of all employees is derived from the employee side. Callers mutate it
// only through Add and Remove; it is not safe for concurrent use.
type Registry struct {
	employees           []string
	departmentMembers   map[string][]string
	employeeDepartments map[string][]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		departmentMembers:   make(map[string][]string),
		employeeDepartments: make(map[string][]string),
	}
}

// Add records p.Name as a member of p.Department. Repeating an existing
// membership leaves the registry unchanged.
func (r *Registry) Add(p Person) {
	r.employees = insertSorted(r.employees, p.Name)
	r.departmentMembers[p.Department] = insertSorted(r.departmentMembers[p.Department], p.Name)
	r.employeeDepartments[p.Name] = insertSorted(r.employeeDepartments[p.Name], p.Department)
}

// Remove drops the membership of p.Name in p.Department.
//
// Both indexes are cleaned independently: a membership present on only one
// side is still removed from that side. Departments without members and
// employees without departments are deleted. Removing an unknown membership
// is a no-op.
func (r *Registry) Remove(p Person) {
	if members, ok := r.departmentMembers[p.Department]; ok {
		members = removeSorted(members, p.Name)
		if len(members) == 0 {
			delete(r.departmentMembers, p.Department)
		} else {
			r.departmentMembers[p.Department] = members
		}
	}

	if depts, ok := r.employeeDepartments[p.Name]; ok {
		depts = removeSorted(depts, p.Department)
		if len(depts) == 0 {
			delete(r.employeeDepartments, p.Name)
		} else {
			r.employeeDepartments[p.Name] = depts
		}
	}

	if _, ok := r.employeeDepartments[p.Name]; !ok {
		r.employees = removeSorted(r.employees, p.Name)
	}
}

// List returns the sorted names matching selector. AllSelector yields every
// employee (ok is always true, the slice may be empty); any other selector is
// a department name and ok reports whether that department exists.
func (r *Registry) List(selector string) (names []string, ok bool) {
	if selector == AllSelector {
		return clone(r.employees), true
	}
	members, ok := r.departmentMembers[selector]
	if !ok {
		return nil, false
	}
	return clone(members), true
}

// Departments returns every department with at least one member, sorted.
func (r *Registry) Departments() []string {
	return sortedKeys(r.departmentMembers)
}

// DepartmentsOf returns the sorted departments name belongs to.
func (r *Registry) DepartmentsOf(name string) []string {
	return clone(r.employeeDepartments[name])
}

// Len reports the number of employees on the roster.
func (r *Registry) Len() int {
	return len(r.employees)
}

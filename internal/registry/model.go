package registry

// AllSelector is the List selector that returns every known employee.
const AllSelector = "all"

// Person is a single membership: one employee name in one department.
// It is a command payload only; the registry never stores it as-is.
type Person struct {
	Name       string
	Department string
}

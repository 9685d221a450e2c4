package app

// ResultKind tells front ends how to render a Result.
type ResultKind int

const (
	ResultOK ResultKind = iota
	ResultListing
	ResultNotFound
	ResultError
	ResultExit
)

func (k ResultKind) String() string {
	switch k {
	case ResultOK:
		return "ok"
	case ResultListing:
		return "listing"
	case ResultNotFound:
		return "not-found"
	case ResultError:
		return "error"
	case ResultExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Result is the presentation-free outcome of one executed line.
type Result struct {
	Kind    ResultKind
	Message string
	// Title and Names are set for ResultListing only.
	Title string
	Names []string
}

const (
	msgNoEmployees  = "No Employees"
	msgNoDepartment = "No Department found"
	titleAll        = "All Employees"
)

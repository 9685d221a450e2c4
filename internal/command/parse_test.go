package command

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"roster/internal/registry"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
	}{
		{
			name: "add with spaces",
			line: "add Jane Doe to Engineering",
			want: Add{Person: registry.Person{Name: "Jane Doe", Department: "Engineering"}},
		},
		{
			name: "remove with spaces",
			line: "remove Jane Doe from Engineering",
			want: Remove{Person: registry.Person{Name: "Jane Doe", Department: "Engineering"}},
		},
		{
			name: "command word is case-insensitive",
			line: "ADD Bob to Sales",
			want: Add{Person: registry.Person{Name: "Bob", Department: "Sales"}},
		},
		{
			name: "whitespace runs collapse",
			line: "  add   Jane\tDoe   to  Research  Lab \n",
			want: Add{Person: registry.Person{Name: "Jane Doe", Department: "Research Lab"}},
		},
		{
			name: "first keyword wins",
			line: "add Jane to Sales to Ops",
			want: Add{Person: registry.Person{Name: "Jane", Department: "Sales to Ops"}},
		},
		{
			name: "keyword matched on whole tokens only",
			line: "add Toto Tomlin to Toronto",
			want: Add{Person: registry.Person{Name: "Toto Tomlin", Department: "Toronto"}},
		},
		{
			name: "keyword is case-sensitive",
			line: "add Jane TO Sales",
			want: Error{Reason: usageAdd},
		},
		{
			name: "add alone",
			line: "add",
			want: Error{Reason: reasonNoName},
		},
		{
			name: "add without keyword",
			line: "add Jane Doe Engineering",
			want: Error{Reason: usageAdd},
		},
		{
			name: "add without name",
			line: "add to Engineering",
			want: Error{Reason: usageAdd},
		},
		{
			name: "add without department",
			line: "add Jane to",
			want: Error{Reason: reasonNoDepartment},
		},
		{
			name: "remove alone",
			line: "remove",
			want: Error{Reason: reasonNoName},
		},
		{
			name: "remove uses from not to",
			line: "remove Jane to Sales",
			want: Error{Reason: usageRemove},
		},
		{
			name: "remove without department",
			line: "remove Jane from",
			want: Error{Reason: reasonNoDepartment},
		},
		{
			name: "list all",
			line: "list",
			want: List{Selector: registry.AllSelector},
		},
		{
			name: "list department",
			line: "List Research  Lab",
			want: List{Selector: "Research Lab"},
		},
		{
			name: "exit ignores arguments",
			line: "exit now please",
			want: Exit{},
		},
		{
			name: "unknown command",
			line: "foo bar",
			want: Error{Reason: reasonInvalid},
		},
		{
			name: "empty line",
			line: "",
			want: Error{Reason: reasonInvalid},
		},
		{
			name: "blank line",
			line: " \t ",
			want: Error{Reason: reasonInvalid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

// A person literally named "to" cannot be added: the first "to" token is
// always taken as the keyword.
func TestParseKeywordNamedPerson(t *testing.T) {
	got := Parse("add to to Engineering")
	want := Error{Reason: usageAdd}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

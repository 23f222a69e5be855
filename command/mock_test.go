package command

import "fmt"

type mockActor struct {
	perms    map[string]bool
	messages []string
}

func newMockActor(perms ...string) *mockActor {
	a := &mockActor{perms: map[string]bool{}}
	for _, p := range perms {
		a.perms[p] = true
	}
	return a
}

func (m *mockActor) HasPermission(perm string) bool {
	return m.perms[perm]
}

func (m *mockActor) Message(a ...any) {
	m.messages = append(m.messages, fmt.Sprint(a...))
}

// counter returns a subcommand counting its runs and recording the arguments of the last one.
func counter(name, perm string) (Subcommand, *int, *[]string) {
	runs := 0
	var last []string
	sc := New(MustDescriptor(name, "Runs "+name, "/mycmd "+name, perm), func(_ Actor, args []string) {
		runs++
		last = args
	})
	return sc, &runs, &last
}

package command

import "strings"

// Registry holds the subcommands of one top-level command. Subcommands are kept in the order they
// were registered, which is both the order of the help listing and the order names are matched in.
// A Registry should be filled during startup, before it is passed to a Dispatcher.
type Registry struct {
	subcommands []Subcommand
}

// NewRegistry returns a Registry holding the subcommands passed, in order.
func NewRegistry(subcommands ...Subcommand) *Registry {
	r := &Registry{}
	for _, sc := range subcommands {
		r.Register(sc)
	}
	return r
}

// Register adds a subcommand to the Registry. Names are not deduplicated: if two subcommands share a
// name, the one registered first is the one found by Find.
func (r *Registry) Register(sc Subcommand) {
	r.subcommands = append(r.subcommands, sc)
}

// Find returns the first registered subcommand whose name matches token, ignoring case.
func (r *Registry) Find(token string) (Subcommand, bool) {
	for _, sc := range r.subcommands {
		if strings.EqualFold(sc.Descriptor().Name(), token) {
			return sc, true
		}
	}
	return nil, false
}

// All returns every registered subcommand in registration order.
func (r *Registry) All() []Subcommand {
	all := make([]Subcommand, len(r.subcommands))
	copy(all, r.subcommands)
	return all
}

// Len returns the amount of registered subcommands.
func (r *Registry) Len() int {
	return len(r.subcommands)
}

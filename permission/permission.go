package permission

import (
	"sort"
	"strings"

	"github.com/scylladb/go-set/strset"
)

// Wildcard grants every permission.
const Wildcard = "*"

// Set is a set of permission strings held by a player. The zero value is an empty Set.
type Set struct {
	perms *strset.Set
}

// NewSet returns a Set holding the permissions passed.
func NewSet(perms ...string) Set {
	return Set{perms: strset.New(perms...)}
}

// Add grants the permissions passed.
func (s *Set) Add(perms ...string) {
	if s.perms == nil {
		s.perms = strset.New()
	}
	s.perms.Add(perms...)
}

// Remove revokes the permissions passed.
func (s *Set) Remove(perms ...string) {
	if s.perms == nil {
		return
	}
	s.perms.Remove(perms...)
}

// Has returns true if the Set holds perm, or holds the Wildcard.
func (s Set) Has(perm string) bool {
	if s.perms == nil {
		return false
	}
	return s.perms.Has(perm) || s.perms.Has(Wildcard)
}

// List returns the permissions in the Set, sorted.
func (s Set) List() []string {
	if s.perms == nil {
		return nil
	}
	l := s.perms.List()
	sort.Strings(l)
	return l
}

// Grants maps players to the permissions they hold. Players are keyed either by XUID or by their
// lower-case name.
type Grants map[string]Set

// NewGrants creates Grants from a map of player keys to permission lists, as found in the settings.
func NewGrants(m map[string][]string) Grants {
	g := make(Grants, len(m))
	for k, perms := range m {
		g[strings.ToLower(k)] = NewSet(perms...)
	}
	return g
}

// Lookup returns the permissions of the player with the XUID and name passed. Permissions granted to
// the XUID and to the name are merged. A player without grants gets an empty Set.
func (g Grants) Lookup(xuid, name string) Set {
	s := NewSet()
	if set, ok := g[xuid]; ok && xuid != "" {
		s.Add(set.List()...)
	}
	if set, ok := g[strings.ToLower(name)]; ok && name != "" {
		s.Add(set.List()...)
	}
	return s
}

package command

import (
	"github.com/oomph-ac/subcmd/assert"
	"github.com/oomph-ac/subcmd/oerror"
)

// Descriptor holds the static metadata of a subcommand. A Descriptor cannot be changed once it was
// created with NewDescriptor.
type Descriptor struct {
	name        string
	description string
	syntax      string
	permission  string
}

// NewDescriptor creates a Descriptor. Every field is required: name is what the actor types after the
// top-level command, syntax and description make up the subcommand's help line and permission is the
// permission the actor must hold to run it.
func NewDescriptor(name, description, syntax, permission string) (Descriptor, error) {
	switch {
	case name == "":
		return Descriptor{}, oerror.New("subcommand descriptor is missing a name")
	case description == "":
		return Descriptor{}, oerror.New("subcommand %q is missing a description", name)
	case syntax == "":
		return Descriptor{}, oerror.New("subcommand %q is missing a syntax", name)
	case permission == "":
		return Descriptor{}, oerror.New("subcommand %q is missing a permission", name)
	}
	return Descriptor{name: name, description: description, syntax: syntax, permission: permission}, nil
}

// MustDescriptor is like NewDescriptor, but panics if the metadata is incomplete.
func MustDescriptor(name, description, syntax, permission string) Descriptor {
	d, err := NewDescriptor(name, description, syntax, permission)
	assert.NoError(err)
	return d
}

// Name returns the name the subcommand is invoked with, for example "heal" in "/mycmd heal".
func (d Descriptor) Name() string {
	return d.name
}

// Description returns a short description of what the subcommand does.
func (d Descriptor) Description() string {
	return d.description
}

// Syntax returns the usage string of the subcommand, for example "/mycmd heal".
func (d Descriptor) Syntax() string {
	return d.syntax
}

// Permission returns the permission required to run the subcommand.
func (d Descriptor) Permission() string {
	return d.permission
}

// HelpLine returns the line shown for the subcommand in the help listing.
func (d Descriptor) HelpLine() string {
	return d.syntax + " - " + d.description
}

// valid reports whether the Descriptor was created through NewDescriptor.
func (d Descriptor) valid() bool {
	return d.name != "" && d.permission != ""
}

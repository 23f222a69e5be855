package command

import (
	"github.com/oomph-ac/subcmd/assert"
	"github.com/sandertv/gophertunnel/minecraft/text"
)

// DenyMessage is sent to an actor that runs a subcommand without holding its permission.
var DenyMessage = text.Colourf("<red>You cannot execute this command.</red>")

// Subcommand is a single subcommand of a top-level command.
type Subcommand interface {
	// Descriptor returns the metadata of the subcommand.
	Descriptor() Descriptor
	// Run runs the subcommand. args holds every argument passed to the top-level command, so args[0] is
	// the name of the subcommand. Run is only called once the actor's permission has been checked, and
	// should not be called directly: use Execute instead.
	Run(a Actor, args []string)
}

// Func is the behaviour of a subcommand created with New.
type Func func(a Actor, args []string)

type funcSubcommand struct {
	desc Descriptor
	fn   Func
}

// New creates a Subcommand from a Descriptor and the function run when the subcommand is executed.
// New panics if the Descriptor was not created with NewDescriptor or fn is nil.
func New(desc Descriptor, fn Func) Subcommand {
	assert.IsTrue(desc.valid(), "subcommand descriptor must be created with NewDescriptor")
	assert.IsTrue(fn != nil, "subcommand %q has no behaviour", desc.Name())
	return funcSubcommand{desc: desc, fn: fn}
}

func (s funcSubcommand) Descriptor() Descriptor {
	return s.desc
}

func (s funcSubcommand) Run(a Actor, args []string) {
	s.fn(a, args)
}

// Execute runs the Subcommand passed if the actor holds its permission. If it does not, the actor is
// sent DenyMessage and the subcommand is not run. Execute reports whether the subcommand was run.
func Execute(sc Subcommand, a Actor, args []string) bool {
	if !a.HasPermission(sc.Descriptor().Permission()) {
		a.Message(DenyMessage)
		return false
	}
	sc.Run(a, args)
	return true
}

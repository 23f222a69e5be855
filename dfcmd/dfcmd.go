// Package dfcmd registers a top-level command handled by a command.Dispatcher with a dragonfly server.
package dfcmd

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/subcmd/command"
	"github.com/oomph-ac/subcmd/permission"
)

// Resolver returns the command.Actor running a command from the source passed. ok is false for sources
// that cannot run subcommands, such as the console.
type Resolver func(src cmd.Source, o *cmd.Output, tx *world.Tx) (a command.Actor, ok bool)

// Actor is a command.Actor that runs a command from dragonfly. Its messages are written to the output of
// the command.
type Actor struct {
	src   cmd.Source
	o     *cmd.Output
	tx    *world.Tx
	name  string
	perms permission.Set
}

// NewActor returns an Actor for the source passed.
func NewActor(src cmd.Source, o *cmd.Output, tx *world.Tx, name string, perms permission.Set) *Actor {
	return &Actor{src: src, o: o, tx: tx, name: name, perms: perms}
}

// Source returns the source that ran the command.
func (a *Actor) Source() cmd.Source {
	return a.src
}

// Tx returns the transaction the command is run in.
func (a *Actor) Tx() *world.Tx {
	return a.tx
}

func (a *Actor) Name() string {
	return a.name
}

func (a *Actor) HasPermission(perm string) bool {
	return a.perms.Has(perm)
}

func (a *Actor) Message(v ...any) {
	a.o.Print(v...)
}

// PlayerResolver returns a Resolver for player sources, with permissions looked up in grants by XUID
// and name.
func PlayerResolver(grants permission.Grants) Resolver {
	return func(src cmd.Source, o *cmd.Output, tx *world.Tx) (command.Actor, bool) {
		p, ok := src.(*player.Player)
		if !ok {
			return nil, false
		}
		return NewActor(src, o, tx, p.Name(), grants.Lookup(p.XUID(), p.Name())), true
	}
}

// Runnable is the cmd.Runnable of a top-level command. All arguments are passed on to the Dispatcher.
type Runnable struct {
	Args cmd.Optional[cmd.Varargs] `cmd:"args"`

	d       *command.Dispatcher
	label   string
	resolve Resolver
}

// NewRunnable returns a Runnable dispatching to d.
func NewRunnable(label string, d *command.Dispatcher, resolve Resolver) Runnable {
	return Runnable{d: d, label: label, resolve: resolve}
}

func (r Runnable) Run(src cmd.Source, o *cmd.Output, tx *world.Tx) {
	r.dispatch(src, o, tx, string(r.Args.LoadOr("")))
}

// dispatch resolves the actor of src and dispatches the raw arguments passed.
func (r Runnable) dispatch(src cmd.Source, o *cmd.Output, tx *world.Tx, raw string) {
	var target any = src
	if a, ok := r.resolve(src, o, tx); ok {
		target = a
	}
	r.d.Dispatch(target, r.label, SplitArgs(raw))
}

// Register registers the command described by info with dragonfly.
func Register(info command.Info, d *command.Dispatcher, resolve Resolver) {
	cmd.Register(cmd.New(info.Label, info.Description, info.Aliases, NewRunnable(info.Label, d, resolve)))
}

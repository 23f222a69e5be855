package command

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// RecoverFunc is called with the value recovered from a panic raised by a subcommand.
type RecoverFunc func(a Actor, sc Subcommand, v any)

// Dispatcher routes invocations of one top-level command to the subcommands in its Registry.
type Dispatcher struct {
	log *logrus.Logger
	reg *Registry

	recoverFunc RecoverFunc
}

// NewDispatcher returns a Dispatcher for the Registry passed. If log is nil, nothing is logged.
func NewDispatcher(log *logrus.Logger, reg *Registry) *Dispatcher {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Dispatcher{log: log, reg: reg}
}

// SetRecoverFunc sets the function called when a subcommand panics. By default panics raised by
// subcommands are not recovered.
func (d *Dispatcher) SetRecoverFunc(f RecoverFunc) {
	d.recoverFunc = f
}

// Registry returns the Registry of the Dispatcher.
func (d *Dispatcher) Registry() *Registry {
	return d.reg
}

// Dispatch handles one invocation of the top-level command. src is whoever invoked the command and
// label is the alias it was invoked with. If src is not an Actor, nothing happens. Without arguments,
// the actor is sent one help line per subcommand. Otherwise the subcommand named by args[0] is executed
// with all of args; an unknown name is ignored.
// Dispatch always returns true: the invocation is always considered handled.
func (d *Dispatcher) Dispatch(src any, label string, args []string) bool {
	a, ok := src.(Actor)
	if !ok {
		return true
	}

	if len(args) == 0 {
		for _, sc := range d.reg.subcommands {
			a.Message(sc.Descriptor().HelpLine())
		}
		return true
	}

	sc, ok := d.reg.Find(args[0])
	if !ok {
		d.log.Debugf("%s ran unknown subcommand /%s %s", actorName(a), label, args[0])
		return true
	}
	d.execute(a, label, sc, args)
	return true
}

func (d *Dispatcher) execute(a Actor, label string, sc Subcommand, args []string) {
	if d.recoverFunc != nil {
		defer func() {
			if v := recover(); v != nil {
				d.log.Errorf("subcommand /%s %s panicked: %v", label, sc.Descriptor().Name(), v)
				d.recoverFunc(a, sc, v)
			}
		}()
	}
	if !Execute(sc, a, args) {
		d.log.Debugf("%s was denied /%s %s (missing %s)", actorName(a), label, sc.Descriptor().Name(), sc.Descriptor().Permission())
		return
	}
	d.log.Debugf("%s ran /%s %s", actorName(a), label, sc.Descriptor().Name())
}

func actorName(a Actor) string {
	if n, ok := a.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", a)
}

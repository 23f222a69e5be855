package command

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// Info describes a top-level command to the client.
type Info struct {
	// Label is the name of the top-level command, without the leading slash.
	Label string
	// Description is shown next to the command in the client's command list.
	Description string
	// Aliases are alternative labels the command may be invoked with.
	Aliases []string
}

// Matches reports whether label is the label or one of the aliases of the command, ignoring case.
func (i Info) Matches(label string) bool {
	if strings.EqualFold(i.Label, label) {
		return true
	}
	for _, alias := range i.Aliases {
		if strings.EqualFold(alias, label) {
			return true
		}
	}
	return false
}

// Advertise adds the top-level command described by info to pk so that the client of the actor passed
// suggests it. Every subcommand the actor may run gets its own overload, with the subcommand name as a
// single-value enum followed by optional raw text arguments. An overload without parameters is always
// present for the help listing.
func Advertise(pk *packet.AvailableCommands, reg *Registry, info Info, a Actor) {
	// Only the first subcommand registered with a name can be reached, so later ones are skipped.
	visible := orderedmap.NewOrderedMap[string, Subcommand]()
	for _, sc := range reg.subcommands {
		key := strings.ToLower(sc.Descriptor().Name())
		if _, ok := visible.Get(key); ok {
			continue
		}
		visible.Set(key, sc)
	}

	overloads := []protocol.CommandOverload{{Parameters: []protocol.CommandParameter{}}}
	for el := visible.Front(); el != nil; el = el.Next() {
		desc := el.Value.Descriptor()
		if !a.HasPermission(desc.Permission()) {
			continue
		}
		enumIdx := FindOrCreateEnum(pk, info.Label+":"+el.Key, []string{el.Key})
		overloads = append(overloads, protocol.CommandOverload{Parameters: []protocol.CommandParameter{
			MakeEnumParam(el.Key, enumIdx, false),
			MakeNormalParam("args", protocol.CommandArgTypeRawText, true),
		}})
	}

	aliasesOffset := ^uint32(0) // MaxUint32 (no aliases)
	if len(info.Aliases) > 0 {
		aliasesOffset = FindOrCreateEnum(pk, info.Label+"Aliases", append([]string{info.Label}, info.Aliases...))
	}

	c := protocol.Command{
		Name:                     info.Label,
		Description:              info.Description,
		AliasesOffset:            aliasesOffset,
		ChainedSubcommandOffsets: []uint32{},
		Overloads:                overloads,
	}
	// The server may declare a command with the same label, which is shadowed by ours on the proxy.
	for i, existing := range pk.Commands {
		if strings.EqualFold(existing.Name, info.Label) {
			pk.Commands[i] = c
			return
		}
	}
	pk.Commands = append(pk.Commands, c)
}

package proxy

import (
	"strings"

	"github.com/oomph-ac/subcmd/command"
	"github.com/oomph-ac/subcmd/permission"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/sirupsen/logrus"
)

// Handler intercepts the packets of one client connection that concern a top-level command: command
// requests for it are dispatched and dropped, and the command is advertised to the client.
type Handler struct {
	log   *logrus.Logger
	d     *command.Dispatcher
	info  command.Info
	actor *Actor
}

// NewHandler returns a Handler for the client connected over conn. The permissions of the client are
// looked up in grants by its XUID and display name.
func NewHandler(log *logrus.Logger, d *command.Dispatcher, info command.Info, conn Conn, grants permission.Grants) *Handler {
	id := conn.IdentityData()
	return &Handler{
		log:   log,
		d:     d,
		info:  info,
		actor: NewActor(log, conn, grants.Lookup(id.XUID, id.DisplayName)),
	}
}

// Actor returns the Actor of the client.
func (h *Handler) Actor() *Actor {
	return h.actor
}

// HandleClientPacket handles a packet sent by the client. It returns true if the packet was consumed and
// should not be sent to the server.
func (h *Handler) HandleClientPacket(pk packet.Packet) bool {
	req, ok := pk.(*packet.CommandRequest)
	if !ok {
		return false
	}
	label, args, ok := ParseCommandLine(req.CommandLine)
	if !ok || !h.info.Matches(label) {
		return false
	}
	return h.d.Dispatch(h.actor, label, args)
}

// HandleServerPacket handles a packet sent by the server before it is forwarded to the client.
func (h *Handler) HandleServerPacket(pk packet.Packet) {
	if cmds, ok := pk.(*packet.AvailableCommands); ok {
		command.Advertise(cmds, h.d.Registry(), h.info, h.actor)
	}
}

// ParseCommandLine splits a command line such as "/mycmd heal now" into its label and arguments.
// ok is false if the line holds no label.
func ParseCommandLine(line string) (label string, args []string, ok bool) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), "/"))
	if len(fields) == 0 {
		return "", nil, false
	}
	return fields[0], fields[1:], true
}

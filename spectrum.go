package subcmd

import (
	"github.com/cooldogedev/spectrum/session"
	"github.com/oomph-ac/subcmd/command"
	"github.com/oomph-ac/subcmd/permission"
	"github.com/oomph-ac/subcmd/proxy"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/sirupsen/logrus"
)

// DecodeClientPackets holds the IDs of the client packets spectrum must decode for a Processor to see them.
var DecodeClientPackets = []uint32{packet.IDCommandRequest}

var _ session.Processor = &Processor{}

// Processor is a spectrum session.Processor that handles a top-level command on the proxy, before
// command requests for it reach the downstream server.
type Processor struct {
	session.NopProcessor

	h *proxy.Handler
}

// NewProcessor returns a Processor for the session passed. Permissions of the session's client are
// looked up in grants.
func NewProcessor(s *session.Session, log *logrus.Logger, d *command.Dispatcher, info command.Info, grants permission.Grants) *Processor {
	return &Processor{h: proxy.NewHandler(log, d, info, s.Client(), grants)}
}

func (p *Processor) ProcessClient(ctx *session.Context, pk *packet.Packet) {
	if p.h.HandleClientPacket(*pk) {
		ctx.Cancel()
	}
}

func (p *Processor) ProcessServer(_ *session.Context, pk *packet.Packet) {
	p.h.HandleServerPacket(*pk)
}

// Handler returns the proxy.Handler used by the Processor.
func (p *Processor) Handler() *proxy.Handler {
	return p.h
}

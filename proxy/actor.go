package proxy

import (
	"fmt"

	"github.com/oomph-ac/subcmd/permission"
	"github.com/sandertv/gophertunnel/minecraft/protocol/login"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/sirupsen/logrus"
)

// Conn is the part of a *minecraft.Conn used to talk to a client.
type Conn interface {
	IdentityData() login.IdentityData
	WritePacket(pk packet.Packet) error
}

// Actor is a command.Actor backed by the connection of a client.
type Actor struct {
	conn  Conn
	perms permission.Set
	log   *logrus.Logger
}

// NewActor returns an Actor for conn holding the permissions passed.
func NewActor(log *logrus.Logger, conn Conn, perms permission.Set) *Actor {
	return &Actor{conn: conn, perms: perms, log: log}
}

// Name returns the display name of the client.
func (a *Actor) Name() string {
	return a.conn.IdentityData().DisplayName
}

// Permissions returns the permissions held by the client.
func (a *Actor) Permissions() permission.Set {
	return a.perms
}

func (a *Actor) HasPermission(perm string) bool {
	return a.perms.Has(perm)
}

// Message sends a chat message to the client.
func (a *Actor) Message(v ...any) {
	if err := a.conn.WritePacket(&packet.Text{TextType: packet.TextTypeChat, Message: fmt.Sprint(v...)}); err != nil {
		a.log.Errorf("unable to send message to %s: %v", a.Name(), err)
	}
}

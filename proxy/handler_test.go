package proxy

import (
	"io"
	"slices"
	"testing"

	"github.com/oomph-ac/subcmd/command"
	"github.com/oomph-ac/subcmd/permission"
	"github.com/sandertv/gophertunnel/minecraft/protocol/login"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/sirupsen/logrus"
)

type mockConn struct {
	id      login.IdentityData
	written []packet.Packet
}

func (c *mockConn) IdentityData() login.IdentityData {
	return c.id
}

func (c *mockConn) WritePacket(pk packet.Packet) error {
	c.written = append(c.written, pk)
	return nil
}

func (c *mockConn) messages() []string {
	var msgs []string
	for _, pk := range c.written {
		if txt, ok := pk.(*packet.Text); ok {
			msgs = append(msgs, txt.Message)
		}
	}
	return msgs
}

func newTestHandler(t *testing.T, perms ...string) (*Handler, *mockConn, *[]string) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	var ran []string
	reg := command.NewRegistry(command.New(command.MustDescriptor("heal", "Heals you", "/mycmd heal", "mycmd.heal"), func(_ command.Actor, args []string) {
		ran = args
	}))
	conn := &mockConn{id: login.IdentityData{XUID: "1", DisplayName: "Steve"}}
	grants := permission.NewGrants(map[string][]string{"steve": perms})
	h := NewHandler(log, command.NewDispatcher(log, reg), command.Info{Label: "mycmd", Aliases: []string{"mc"}}, conn, grants)
	return h, conn, &ran
}

func TestHandleClientPacketDispatches(t *testing.T) {
	h, conn, ran := newTestHandler(t, "mycmd.heal")
	if !h.HandleClientPacket(&packet.CommandRequest{CommandLine: "/mc heal now"}) {
		t.Fatalf("expected command request to be consumed")
	}
	if want := []string{"heal", "now"}; !slices.Equal(*ran, want) {
		t.Fatalf("expected %v, got %v", want, *ran)
	}
	if len(conn.messages()) != 0 {
		t.Fatalf("expected no messages, got %v", conn.messages())
	}
}

func TestHandleClientPacketDenied(t *testing.T) {
	h, conn, ran := newTestHandler(t)
	h.HandleClientPacket(&packet.CommandRequest{CommandLine: "/mycmd heal"})
	if *ran != nil {
		t.Fatalf("behaviour must not run without permission")
	}
	if msgs := conn.messages(); len(msgs) != 1 || msgs[0] != command.DenyMessage {
		t.Fatalf("expected deny message, got %v", msgs)
	}
}

func TestHandleClientPacketHelp(t *testing.T) {
	h, conn, _ := newTestHandler(t)
	h.HandleClientPacket(&packet.CommandRequest{CommandLine: "/MYCMD"})
	if msgs := conn.messages(); len(msgs) != 1 || msgs[0] != "/mycmd heal - Heals you" {
		t.Fatalf("expected help line, got %v", msgs)
	}
}

func TestHandleClientPacketPassesThrough(t *testing.T) {
	h, conn, _ := newTestHandler(t, "mycmd.heal")
	for _, pk := range []packet.Packet{
		&packet.CommandRequest{CommandLine: "/gamemode creative"},
		&packet.CommandRequest{CommandLine: "   "},
		&packet.Text{Message: "/mycmd heal"},
	} {
		if h.HandleClientPacket(pk) {
			t.Fatalf("expected %T to be forwarded", pk)
		}
	}
	if len(conn.written) != 0 {
		t.Fatalf("expected nothing written to the client")
	}
}

func TestHandleServerPacketAdvertises(t *testing.T) {
	h, _, _ := newTestHandler(t, "mycmd.heal")
	pk := &packet.AvailableCommands{}
	h.HandleServerPacket(pk)
	if len(pk.Commands) != 1 || pk.Commands[0].Name != "mycmd" || len(pk.Commands[0].Overloads) != 2 {
		t.Fatalf("unexpected advertised commands %+v", pk.Commands)
	}
}

func TestParseCommandLine(t *testing.T) {
	label, args, ok := ParseCommandLine("  /mycmd  heal   self ")
	if !ok || label != "mycmd" || !slices.Equal(args, []string{"heal", "self"}) {
		t.Fatalf("unexpected parse %q %v %v", label, args, ok)
	}
	if _, _, ok := ParseCommandLine("/"); ok {
		t.Fatalf("expected empty line to have no label")
	}
}

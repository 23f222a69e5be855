package main

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/subcmd/command"
	"github.com/oomph-ac/subcmd/proxy"
	"github.com/oomph-ac/subcmd/settings"
	"github.com/sandertv/gophertunnel/minecraft"
	"github.com/sandertv/gophertunnel/minecraft/text"
	"github.com/sirupsen/logrus"
)

// The following program implements a proxy that forwards players from a local address to a remote
// address, handling the configured top-level command on the proxy itself.
func main() {
	conf, err := settings.Load("config.toml")
	if err != nil {
		logrus.Fatalf("error loading settings: %v", err)
	}
	log := conf.Logger()

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Fatalf("error initializing sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))
		go statsview.New().Start()
	}

	d := command.NewDispatcher(log, registry(conf.Command.Label))
	d.SetRecoverFunc(reportPanic)

	p, err := minecraft.NewForeignStatusProvider(conf.Network.RemoteAddress)
	if err != nil {
		log.Fatalf("error creating status provider: %v", err)
	}
	listener, err := minecraft.ListenConfig{
		StatusProvider: p,
	}.Listen("raknet", conf.Network.LocalAddress)
	if err != nil {
		log.Fatalf("error listening on %v: %v", conf.Network.LocalAddress, err)
	}
	defer listener.Close()
	log.Infof("listening on %v and directing connections to %v", conf.Network.LocalAddress, conf.Network.RemoteAddress)

	for {
		c, err := listener.Accept()
		if err != nil {
			return
		}
		go handleConn(log, c.(*minecraft.Conn), listener, conf, d)
	}
}

func registry(label string) *command.Registry {
	return command.NewRegistry(
		command.New(command.MustDescriptor("whoami", "Shows your name and permissions", "/"+label+" whoami", label+".whoami"), func(a command.Actor, _ []string) {
			pa := a.(*proxy.Actor)
			a.Message(text.Colourf("You are <aqua>%s</aqua> with permissions: %s", pa.Name(), strings.Join(pa.Permissions().List(), ", ")))
		}),
		command.New(command.MustDescriptor("echo", "Repeats the text passed", "/"+label+" echo <text>", label+".echo"), func(a command.Actor, args []string) {
			a.Message(strings.Join(args[1:], " "))
		}),
	)
}

func reportPanic(a command.Actor, sc command.Subcommand, v any) {
	hub := sentry.CurrentHub().Clone()
	hub.Scope().SetTag("subcommand", sc.Descriptor().Name())
	hub.Recover(v)
	a.Message(text.Colourf("<red>An internal error occurred while running this command.</red>"))
}

// handleConn handles a new incoming minecraft.Conn from the minecraft.Listener passed.
func handleConn(log *logrus.Logger, conn *minecraft.Conn, listener *minecraft.Listener, conf settings.Settings, d *command.Dispatcher) {
	serverConn, err := minecraft.Dialer{
		ClientData:   conn.ClientData(),
		IdentityData: conn.IdentityData(),
	}.Dial("raknet", conf.Network.RemoteAddress)
	if err != nil {
		log.Errorf("error dialing %v: %v", conf.Network.RemoteAddress, err)
		_ = listener.Disconnect(conn, "unable to reach the server")
		return
	}
	h := proxy.NewHandler(log, d, conf.Info(), conn, conf.Grants())

	var g sync.WaitGroup
	g.Add(2)
	go func() {
		if err := conn.StartGame(serverConn.GameData()); err != nil {
			log.Errorf("error starting game for %s: %v", conn.IdentityData().DisplayName, err)
		}
		g.Done()
	}()
	go func() {
		if err := serverConn.DoSpawn(); err != nil {
			log.Errorf("error spawning %s: %v", conn.IdentityData().DisplayName, err)
		}
		g.Done()
	}()
	g.Wait()

	g.Add(2)
	go func() {
		defer g.Done()
		defer listener.Disconnect(conn, "connection lost")
		defer serverConn.Close()
		for {
			pk, err := conn.ReadPacket()
			if err != nil {
				return
			}
			if h.HandleClientPacket(pk) {
				continue
			}
			if err := serverConn.WritePacket(pk); err != nil {
				var disc minecraft.DisconnectError
				if errors.As(err, &disc) {
					_ = listener.Disconnect(conn, disc.Error())
				}
				return
			}
		}
	}()
	go func() {
		defer g.Done()
		defer serverConn.Close()
		defer listener.Disconnect(conn, "connection lost")
		for {
			pk, err := serverConn.ReadPacket()
			if err != nil {
				var disc minecraft.DisconnectError
				if errors.As(err, &disc) {
					_ = listener.Disconnect(conn, disc.Error())
				}
				return
			}
			h.HandleServerPacket(pk)
			if err := conn.WritePacket(pk); err != nil {
				return
			}
		}
	}()
	g.Wait()
}

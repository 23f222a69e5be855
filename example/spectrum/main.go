package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/cooldogedev/spectrum"
	"github.com/cooldogedev/spectrum/server"
	"github.com/cooldogedev/spectrum/session"
	"github.com/cooldogedev/spectrum/util"
	"github.com/oomph-ac/subcmd"
	"github.com/oomph-ac/subcmd/command"
	"github.com/oomph-ac/subcmd/settings"
	"github.com/sandertv/gophertunnel/minecraft"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := slog.Default()
	conf, err := settings.Load("config.toml")
	if err != nil {
		logrus.Fatalf("error loading settings: %v", err)
	}
	log := conf.Logger()

	label := conf.Command.Label
	d := command.NewDispatcher(log, command.NewRegistry(
		command.New(command.MustDescriptor("echo", "Repeats the text passed", "/"+label+" echo <text>", label+".echo"), func(a command.Actor, args []string) {
			a.Message(strings.Join(args[1:], " "))
		}),
	))

	opts := util.DefaultOpts()
	opts.ClientDecode = subcmd.DecodeClientPackets
	opts.AutoLogin = false
	opts.Addr = conf.Network.LocalAddress

	proxy := spectrum.NewSpectrum(server.NewStaticDiscovery(conf.Network.RemoteAddress, ""), logger, opts, nil)
	if err := proxy.Listen(minecraft.ListenConfig{
		StatusProvider: util.NewStatusProvider("Spectrum Proxy", "Spectrum"),
	}); err != nil {
		log.Fatalf("error listening: %v", err)
	}

	for {
		s, err := proxy.Accept()
		if err != nil {
			continue
		}

		go func(s *session.Session) {
			// Auto-login is disabled so that the processor is in place before the first packets arrive.
			s.SetProcessor(subcmd.NewProcessor(s, log, d, conf.Info(), conf.Grants()))
			if err := s.Login(); err != nil {
				s.Disconnect(err.Error())
				if !errors.Is(err, context.Canceled) {
					logger.Error("failed to login session", "err", err)
				}
			}
		}(s)
	}
}

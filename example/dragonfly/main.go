package main

import (
	"log/slog"

	"github.com/df-mc/dragonfly/server"
	"github.com/df-mc/dragonfly/server/entity"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/player/chat"
	"github.com/oomph-ac/subcmd/command"
	"github.com/oomph-ac/subcmd/dfcmd"
	"github.com/oomph-ac/subcmd/settings"
	"github.com/sandertv/gophertunnel/minecraft/text"
)

func main() {
	log := slog.Default()
	chat.Global.Subscribe(chat.StdoutSubscriber{})

	conf, err := settings.Load("subcmd.toml")
	if err != nil {
		panic(err)
	}
	label := conf.Command.Label

	d := command.NewDispatcher(conf.Logger(), command.NewRegistry(
		command.New(command.MustDescriptor("heal", "Heals you", "/"+label+" heal", label+".heal"), func(a command.Actor, _ []string) {
			p := a.(*dfcmd.Actor).Source().(*player.Player)
			p.Heal(p.MaxHealth(), entity.FoodHealingSource{})
			a.Message(text.Colourf("<green>You have been healed.</green>"))
		}),
		command.New(command.MustDescriptor("feed", "Fills your hunger bar", "/"+label+" feed", label+".feed"), func(a command.Actor, _ []string) {
			p := a.(*dfcmd.Actor).Source().(*player.Player)
			p.AddFood(20)
			a.Message(text.Colourf("<green>You have been fed.</green>"))
		}),
	))
	dfcmd.Register(conf.Info(), d, dfcmd.PlayerResolver(conf.Grants()))

	srvConf, err := server.DefaultConfig().Config(log)
	if err != nil {
		panic(err)
	}
	srv := srvConf.New()
	srv.CloseOnProgramEnd()
	srv.Listen()
	for range srv.Accept() {
	}
}

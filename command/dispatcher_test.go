package command

import (
	"slices"
	"testing"
)

func TestDispatchHelpListing(t *testing.T) {
	r := NewRegistry(
		New(MustDescriptor("heal", "Heals you", "/mycmd heal", "mycmd.heal"), func(Actor, []string) {}),
		New(MustDescriptor("feed", "Feeds you", "/mycmd feed", "mycmd.feed"), func(Actor, []string) {}),
	)
	a := newMockActor()
	if !NewDispatcher(nil, r).Dispatch(a, "mycmd", nil) {
		t.Fatalf("dispatch must report handled")
	}
	want := []string{"/mycmd heal - Heals you", "/mycmd feed - Feeds you"}
	if !slices.Equal(a.messages, want) {
		t.Fatalf("expected help %v, got %v", want, a.messages)
	}
}

func TestDispatchUnknownSubcommandIsSilent(t *testing.T) {
	heal, runs, _ := counter("heal", "mycmd.heal")
	a := newMockActor("mycmd.heal")
	if !NewDispatcher(nil, NewRegistry(heal)).Dispatch(a, "mycmd", []string{"fly"}) {
		t.Fatalf("dispatch must report handled")
	}
	if len(a.messages) != 0 || *runs != 0 {
		t.Fatalf("expected no messages and no runs, got %v and %d runs", a.messages, *runs)
	}
}

func TestDispatchDenied(t *testing.T) {
	heal, runs, _ := counter("heal", "mycmd.heal")
	a := newMockActor()
	if !NewDispatcher(nil, NewRegistry(heal)).Dispatch(a, "mycmd", []string{"heal"}) {
		t.Fatalf("dispatch must report handled")
	}
	if len(a.messages) != 1 || a.messages[0] != DenyMessage {
		t.Fatalf("expected exactly one deny message, got %v", a.messages)
	}
	if *runs != 0 {
		t.Fatalf("behaviour must not run without permission")
	}
}

func TestDispatchRunsWithFullArguments(t *testing.T) {
	heal, runs, last := counter("heal", "mycmd.heal")
	a := newMockActor("mycmd.heal")
	args := []string{"HEAL", "self", "20"}
	NewDispatcher(nil, NewRegistry(heal)).Dispatch(a, "mycmd", args)
	if *runs != 1 {
		t.Fatalf("expected one run, got %d", *runs)
	}
	if !slices.Equal(*last, args) {
		t.Fatalf("expected arguments %v, got %v", args, *last)
	}
	if len(a.messages) != 0 {
		t.Fatalf("expected no deny message, got %v", a.messages)
	}
}

func TestDispatchIgnoresNonActors(t *testing.T) {
	heal, runs, _ := counter("heal", "mycmd.heal")
	d := NewDispatcher(nil, NewRegistry(heal))
	if !d.Dispatch(struct{}{}, "mycmd", []string{"heal"}) {
		t.Fatalf("dispatch must report handled")
	}
	if !d.Dispatch(nil, "mycmd", nil) {
		t.Fatalf("dispatch must report handled")
	}
	if *runs != 0 {
		t.Fatalf("behaviour must not run for a non-actor source")
	}
}

func TestDispatchRecoverFunc(t *testing.T) {
	boom := New(MustDescriptor("boom", "Panics", "/mycmd boom", "mycmd.boom"), func(Actor, []string) {
		panic("boom")
	})
	d := NewDispatcher(nil, NewRegistry(boom))

	var recovered any
	d.SetRecoverFunc(func(_ Actor, sc Subcommand, v any) {
		recovered = v
	})
	if !d.Dispatch(newMockActor("mycmd.boom"), "mycmd", []string{"boom"}) {
		t.Fatalf("dispatch must report handled")
	}
	if recovered != "boom" {
		t.Fatalf("expected panic value to be recovered, got %v", recovered)
	}
}

func TestExampleScenario(t *testing.T) {
	healed := 0
	heal := New(MustDescriptor("heal", "Heals you", "/mycmd heal", "mycmd.heal"), func(Actor, []string) {
		healed++
	})
	d := NewDispatcher(nil, NewRegistry(heal))

	a := newMockActor()
	d.Dispatch(a, "mycmd", []string{"heal"})
	if healed != 0 || len(a.messages) != 1 || a.messages[0] != DenyMessage {
		t.Fatalf("expected denial without heal, got healed=%d messages=%v", healed, a.messages)
	}

	a.perms["mycmd.heal"] = true
	a.messages = nil
	d.Dispatch(a, "mycmd", []string{"heal"})
	if healed != 1 || len(a.messages) != 0 {
		t.Fatalf("expected heal without denial, got healed=%d messages=%v", healed, a.messages)
	}
}

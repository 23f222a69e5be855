package command

// Actor is an entity able to invoke subcommands: it holds permissions and can be sent text messages.
// Sources passed to Dispatcher.Dispatch that do not implement Actor (such as a console) are ignored.
type Actor interface {
	// HasPermission returns true if the actor holds the permission passed.
	HasPermission(perm string) bool
	// Message sends a chat message to the actor. The arguments are formatted like fmt.Sprint.
	Message(a ...any)
}

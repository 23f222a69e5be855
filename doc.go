// Package subcmd handles top-level commands made up of subcommands for Minecraft servers and proxies.
// The dispatch logic lives in package command; this package connects it to spectrum sessions.
package subcmd

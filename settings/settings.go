package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/oomph-ac/subcmd/command"
	"github.com/oomph-ac/subcmd/permission"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// Settings contains everything that can be configured for a top-level command and the proxy hosting it.
type Settings struct {
	Command struct {
		// Label is the name of the top-level command, without the leading slash.
		Label       string
		Description string
		Aliases     []string
	}
	Network struct {
		LocalAddress  string
		RemoteAddress string
	}
	Log struct {
		// Level is a logrus level, such as "info" or "debug".
		Level string
	}
	// Permissions maps an XUID or player name to the permissions the player holds.
	Permissions map[string][]string
}

// DefaultSettings returns the settings written when no config file exists yet.
func DefaultSettings() Settings {
	s := Settings{}
	s.Command.Label = "mycmd"
	s.Command.Description = "Lists and runs the mycmd subcommands"
	s.Network.LocalAddress = "0.0.0.0:19132"
	s.Network.RemoteAddress = "127.0.0.1:19133"
	s.Log.Level = "info"
	s.Permissions = map[string][]string{}
	return s
}

// Load reads the settings from the TOML file at path. If the file does not exist, it is created with
// DefaultSettings.
func Load(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		data, err := toml.Marshal(s)
		if err != nil {
			return s, fmt.Errorf("encode default settings: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return s, fmt.Errorf("create default settings: %w", err)
		}
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("decode settings: %w", err)
	}
	return s, s.Validate()
}

// Validate checks that the settings can be used to register a command.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Command.Label) == "" {
		return errors.New("settings: command label must not be empty")
	}
	if strings.ContainsAny(s.Command.Label, " /") {
		return fmt.Errorf("settings: command label %q must not contain spaces or slashes", s.Command.Label)
	}
	if _, err := logrus.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

// Info returns the command.Info of the configured top-level command.
func (s Settings) Info() command.Info {
	return command.Info{
		Label:       s.Command.Label,
		Description: s.Command.Description,
		Aliases:     s.Command.Aliases,
	}
}

// Grants returns the configured permission grants.
func (s Settings) Grants() permission.Grants {
	return permission.NewGrants(s.Permissions)
}

// Logger returns a logrus logger at the configured level.
func (s Settings) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if lvl, err := logrus.ParseLevel(s.Log.Level); err == nil {
		log.SetLevel(lvl)
	}
	return log
}

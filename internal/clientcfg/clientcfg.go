// Package clientcfg installs the server into MCP client configuration files
// such as Claude Desktop's claude_desktop_config.json. Other keys in the file
// are preserved: only the mcpServers entry for this server is touched.
package clientcfg

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/frostlab/sensormcp/internal/errortypes"
)

// DefaultEntryName is the key under mcpServers used for this server.
const DefaultEntryName = "sensormcp"

// ServerConfig defines the configuration for launching a single MCP server
// process.
type ServerConfig struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

// ClaudeDesktopConfigPath returns the default Claude Desktop config file
// location for the current platform.
func ClaudeDesktopConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errortypes.ConfigError(err, "failed to resolve home directory")
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Claude", "claude_desktop_config.json"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "Claude", "claude_desktop_config.json"), nil
	default:
		return filepath.Join(home, ".config", "Claude", "claude_desktop_config.json"), nil
	}
}

// ValidateCommand checks that the configured command points at an existing
// executable. A bare command name is resolved against PATH by the client, so
// only paths are checked here.
func ValidateCommand(command string) error {
	if command == "" {
		return errortypes.ValidationError(errors.New("command cannot be empty"), "invalid server entry")
	}
	if filepath.Base(command) == command {
		return nil
	}

	info, err := os.Stat(command)
	if err != nil {
		return errortypes.ValidationError(err, "server command not found")
	}
	if info.IsDir() {
		return errortypes.ValidationError(errors.New("command is a directory"), "invalid server entry")
	}
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o111 == 0 {
		return errortypes.ValidationError(errors.New("command is not executable"), "invalid server entry")
	}
	return nil
}

// Install merges the server entry into the config file at path, creating the
// file and its directory when missing.
func Install(path, name string, entry ServerConfig) error {
	if name == "" {
		name = DefaultEntryName
	}
	if err := ValidateCommand(entry.Command); err != nil {
		return err
	}
	if entry.Args == nil {
		entry.Args = []string{}
	}

	// Read the whole document loosely so unrelated client settings survive
	// the rewrite.
	doc := map[string]json.RawMessage{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &doc); err != nil {
			return errortypes.ConfigError(err, "failed to parse client config")
		}
	case errors.Is(err, os.ErrNotExist):
		// Start from an empty document.
	default:
		return errortypes.ConfigError(err, "failed to read client config")
	}

	servers := map[string]json.RawMessage{}
	if raw, ok := doc["mcpServers"]; ok {
		if err := json.Unmarshal(raw, &servers); err != nil {
			return errortypes.ConfigError(err, "failed to parse mcpServers section")
		}
	}

	encoded, err := json.Marshal(entry)
	if err != nil {
		return errortypes.ConfigError(err, "failed to encode server entry")
	}
	servers[name] = encoded

	raw, err := json.Marshal(servers)
	if err != nil {
		return errortypes.ConfigError(err, "failed to encode mcpServers section")
	}
	doc["mcpServers"] = raw

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errortypes.ConfigError(err, "failed to encode client config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errortypes.ConfigError(err, "failed to create config directory")
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return errortypes.ConfigError(err, "failed to write client config")
	}
	return nil
}

// Uninstall removes the server entry from the config file at path. A missing
// file or entry is not an error.
func Uninstall(path, name string) error {
	if name == "" {
		name = DefaultEntryName
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errortypes.ConfigError(err, "failed to read client config")
	}

	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return errortypes.ConfigError(err, "failed to parse client config")
	}

	servers := map[string]json.RawMessage{}
	if raw, ok := doc["mcpServers"]; ok {
		if err := json.Unmarshal(raw, &servers); err != nil {
			return errortypes.ConfigError(err, "failed to parse mcpServers section")
		}
	}
	if _, ok := servers[name]; !ok {
		return nil
	}
	delete(servers, name)

	raw, err := json.Marshal(servers)
	if err != nil {
		return errortypes.ConfigError(err, "failed to encode mcpServers section")
	}
	doc["mcpServers"] = raw

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errortypes.ConfigError(err, "failed to encode client config")
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return errortypes.ConfigError(err, "failed to write client config")
	}
	return nil
}

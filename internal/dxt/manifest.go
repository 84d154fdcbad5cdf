// Package dxt builds desktop extension packages: a zip archive carrying a
// manifest.json plus the server binary and support files, installable into
// MCP desktop clients with a double click.
package dxt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/frostlab/sensormcp/internal/errortypes"
)

// ManifestFilename is the manifest's fixed name inside an extension.
const ManifestFilename = "manifest.json"

// ManifestVersion is the extension format revision this package writes.
const ManifestVersion = "0.1"

// ErrManifestExists is returned by Init when a manifest is already present
// and force was not set.
var ErrManifestExists = errors.New("manifest already exists")

// MCPConfig tells the desktop client how to launch the bundled server.
type MCPConfig struct {
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// ServerSpec describes the server carried by the extension.
type ServerSpec struct {
	Type       string    `json:"type"`
	EntryPoint string    `json:"entry_point,omitempty"`
	MCPConfig  MCPConfig `json:"mcp_config"`
}

// Author identifies the extension publisher.
type Author struct {
	Name string `json:"name,omitempty"`
}

// Manifest is the extension descriptor.
type Manifest struct {
	DXTVersion  string     `json:"dxt_version"`
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name,omitempty"`
	Version     string     `json:"version"`
	Description string     `json:"description,omitempty"`
	Author      Author     `json:"author,omitempty"`
	Server      ServerSpec `json:"server"`
}

// NewManifest returns a starter manifest for a binary server extension.
func NewManifest(name, version string) *Manifest {
	return &Manifest{
		DXTVersion:  ManifestVersion,
		Name:        name,
		DisplayName: name,
		Version:     version,
		Description: "FROST SensorThings API tools for MCP clients",
		Server: ServerSpec{
			Type:       "binary",
			EntryPoint: name,
			MCPConfig: MCPConfig{
				Command: "${__dirname}/" + name,
			},
		},
	}
}

// Validate checks the fields a client needs to launch the extension.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return errortypes.ValidationError(errors.New("name is required"), "invalid manifest")
	}
	if m.Version == "" {
		return errortypes.ValidationError(errors.New("version is required"), "invalid manifest")
	}
	if m.Server.MCPConfig.Command == "" {
		return errortypes.ValidationError(errors.New("server.mcp_config.command is required"), "invalid manifest")
	}
	return nil
}

// Init writes a starter manifest into dir and returns its path. An existing
// manifest is only overwritten when force is set.
func Init(dir, name, version string, force bool) (string, error) {
	path := filepath.Join(dir, ManifestFilename)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w: %s", ErrManifestExists, path)
		}
	}

	m := NewManifest(name, version)
	if err := m.Save(path); err != nil {
		return "", err
	}
	return path, nil
}

// Load reads and validates the manifest in dir.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFilename)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errortypes.PackagingError(err, "failed to read manifest")
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errortypes.PackagingError(err, "failed to parse manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save writes the manifest to path.
func (m *Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errortypes.PackagingError(err, "failed to encode manifest")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errortypes.PackagingError(err, "failed to write manifest")
	}
	return nil
}

// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// rolesFile is the on-disk layout: a list of [[role]] tables.
type rolesFile struct {
	Roles []Role `toml:"role"`
}

// LoadRoles reads a TOML roles file. An empty path yields DefaultRoles.
func LoadRoles(path string) ([]Role, error) {
	if path == "" {
		roles := make([]Role, len(DefaultRoles))
		copy(roles, DefaultRoles)
		return roles, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roles file: %w", err)
	}
	roles, err := ParseRoles(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("Loaded %d role definitions from %s", len(roles), path)
	return roles, nil
}

// ParseRoles decodes and validates roles from TOML data.
func ParseRoles(data []byte) ([]Role, error) {
	var file rolesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roles: %w", err)
	}
	if len(file.Roles) == 0 {
		return nil, errors.New("no [[role]] entries found")
	}

	for i, role := range file.Roles {
		if err := role.Validate(); err != nil {
			return nil, fmt.Errorf("role #%d: %w", i+1, err)
		}
		if role.Link == "" {
			log.Printf("WARNING: role %q has no link; clicking it will do nothing", role.Name)
		}
	}
	return file.Roles, nil
}

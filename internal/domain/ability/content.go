package ability

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gosaintmrc/sulis/internal/errors"
)

// LoadDefinitions reads every *.yaml / *.yml file in dir as one ability
// definition and returns them keyed by ability key
func LoadDefinitions(dir string) (map[string]*Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read content dir %s", dir)
	}

	defs := make(map[string]*Definition)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		def, err := loadDefinition(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, exists := defs[def.Key]; exists {
			return nil, errors.Newf(errors.CodeAlreadyExists,
				"duplicate ability key %q in %s", def.Key, entry.Name())
		}
		defs[def.Key] = def
	}

	return defs, nil
}

func loadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	if def.Key == "" {
		return nil, errors.InvalidArgumentf("ability in %s has no key", path)
	}
	if def.Name == "" {
		def.Name = def.Key
	}
	if def.MaxLevel <= 0 {
		def.MaxLevel = 1
	}

	return &def, nil
}

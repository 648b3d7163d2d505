package store

import (
	"fmt"
	"os"

	"planboard/src-server/model"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML document that can replace the demo data:
//
//	notes:
//	  - title: Groceries
//	    content: milk, eggs
//	    pinned: true
//	    labels: [errands]
//	todos:
//	  - text: Call mom
//	    priority: high
type SeedFile struct {
	Notes []model.Note `yaml:"notes"`
	Todos []model.Todo `yaml:"todos"`
}

// LoadSeedFile reads and validates a seed file. Missing ids are generated;
// any invalid note or todo fails the whole file.
func LoadSeedFile(path string) (SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedFile{}, fmt.Errorf("LoadSeedFile: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return SeedFile{}, fmt.Errorf("LoadSeedFile: %s: %w", path, err)
	}

	for i := range seed.Notes {
		n := &seed.Notes[i]
		n.Normalize()
		if err := n.Validate(); err != nil {
			return SeedFile{}, fmt.Errorf("LoadSeedFile: note %d: %w", i, err)
		}
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
	}
	for i := range seed.Todos {
		t := &seed.Todos[i]
		t.Normalize()
		if err := t.Validate(); err != nil {
			return SeedFile{}, fmt.Errorf("LoadSeedFile: todo %d: %w", i, err)
		}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
	}
	return seed, nil
}

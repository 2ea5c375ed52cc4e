// Package seed loads the initial catalog and admin list the store starts with.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/repository"
	"storefront/internal/validation"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSeed []byte

type File struct {
	Products []validation.ProductCreate `yaml:"products"`
	Admins   []domain.AdminUser         `yaml:"admins"`
}

// Default returns the built-in seed.
func Default() (*File, error) {
	return Parse(defaultSeed)
}

// Load reads a seed file, or the built-in seed when path is empty.
func Load(path string) (*File, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a YAML seed document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate runs every product through the create schema and checks that each
// admin has a username and password.
func (f *File) Validate() error {
	for i, p := range f.Products {
		if err := validation.Struct(p); err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
	}
	for i, a := range f.Admins {
		if strings.TrimSpace(a.Username) == "" {
			return fmt.Errorf("admins[%d]: username is required", i)
		}
		if a.Password == "" {
			return fmt.Errorf("admins[%d]: password is required", i)
		}
	}
	return nil
}

// StoreOptions turns the seed into MemoryStore options. Products keep their
// file order, so the first one gets id 1.
func (f *File) StoreOptions() []repository.Option {
	inputs := make([]domain.ProductInput, 0, len(f.Products))
	for _, p := range f.Products {
		inputs = append(inputs, p.ToInput())
	}
	return []repository.Option{
		repository.WithAdmins(f.Admins...),
		repository.WithSeedProducts(inputs...),
	}
}

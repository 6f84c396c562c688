package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/siegegrid/template"
)

//go:embed templates/*.tmpl
var builtinFS embed.FS

// Entry is one named template: its text and optional default target
// dimensions (0 means "keep the template's own size").
type Entry struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Grid   string `yaml:"grid"`
}

// Parse parses the entry's grid with default options.
func (e Entry) Parse() (*template.Grid, error) {
	return template.Parse(e.Grid, template.DefaultParseOptions())
}

// catalogFile is the YAML document layout.
type catalogFile struct {
	Templates []Entry `yaml:"templates"`
}

// Catalog is an immutable named-template collection.
type Catalog struct {
	entries map[string]Entry
	names   []string
}

// New builds a catalog from entries, validating each one: a name is
// required, names must be unique, and every grid must parse.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%w: entry without a name", ErrInvalidEntry)
		}
		if _, dup := c.entries[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTemplate, e.Name)
		}
		if _, err := e.Parse(); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidEntry, e.Name, err)
		}
		c.entries[e.Name] = e
		c.names = append(c.names, e.Name)
	}
	sort.Strings(c.names)

	return c, nil
}

// Builtin returns the embedded catalog: tower, wall, ramp, bridge.
func Builtin() *Catalog {
	entries, err := readDir(builtinFS, "templates")
	if err != nil {
		// Embedded templates are validated by the package tests; a
		// failure here is a build defect.
		panic(err)
	}
	c, err := New(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a YAML catalog from a file on disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return parseYAML(data)
}

// LoadFS reads a YAML catalog from a file system.
func LoadFS(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", name, err)
	}
	return parseYAML(data)
}

// Get returns the entry with the given name.
// Returns ErrUnknownTemplate when no such entry exists.
func (c *Catalog) Get(name string) (Entry, error) {
	e, ok := c.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return e, nil
}

// Names returns all entry names in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.names) }

func parseYAML(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return New(f.Templates)
}

func readDir(fsys fs.FS, dir string) ([]Entry, error) {
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		data, err := fs.ReadFile(fsys, dir+"/"+f.Name())
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			Name: strings.TrimSuffix(f.Name(), ".tmpl"),
			Grid: string(data),
		})
	}
	return entries, nil
}

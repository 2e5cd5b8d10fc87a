package phoneset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Phone describes a single phone in a TTS phone inventory.
type Phone struct {
	Name     string
	ID       int      // position in the inventory, assigned at load time
	Features []string // linguistic feature tags (e.g. "vowel", "nasal")
}

// PhoneSet holds the canonical phone inventory for a voice.
type PhoneSet struct {
	phones map[string]Phone
	order  []string // names in insertion order
}

// New creates an empty phone set.
func New() *PhoneSet {
	return &PhoneSet{
		phones: make(map[string]Phone),
	}
}

// Add inserts a phone with the given feature tags. Re-adding an existing
// phone replaces its features but keeps its original ID and position.
func (ps *PhoneSet) Add(name string, features ...string) {
	if p, ok := ps.phones[name]; ok {
		p.Features = features
		ps.phones[name] = p
		return
	}
	ps.phones[name] = Phone{
		Name:     name,
		ID:       len(ps.order),
		Features: features,
	}
	ps.order = append(ps.order, name)
}

// GetPhone looks up a phone by name.
func (ps *PhoneSet) GetPhone(name string) (Phone, bool) {
	p, ok := ps.phones[name]
	return p, ok
}

// Names returns all phone names in inventory order.
func (ps *PhoneSet) Names() []string {
	names := make([]string, len(ps.order))
	copy(names, ps.order)
	return names
}

// Len returns the number of phones in the inventory.
func (ps *PhoneSet) Len() int {
	return len(ps.order)
}

// Load reads a phone inventory from a text source.
// Format: one phone per line, phone name followed by optional
// whitespace-separated feature tags. Lines starting with # are comments.
func Load(r io.Reader) (*PhoneSet, error) {
	ps := New()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		ps.Add(fields[0], fields[1:]...)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNum, err)
	}

	return ps, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*PhoneSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

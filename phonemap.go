package phoneq

import (
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/ieee0824/phoneq-go/question"
)

// MapFile is a phone-remapping table, optionally with parser pattern
// overrides, loaded from TOML:
//
//	[phones]
//	m = ["m1", "m2"]
//	n = []          # explicit drop
//
//	[patterns]
//	line = "^QS\\s+'L_([^']*)'\\s*\\{(.*)\\}$"
//	item = "^\"(.+)-\\*\"$"
//	delimiters = ", "
type MapFile struct {
	Phones   map[string][]string `toml:"phones"`
	Patterns struct {
		Line       string `toml:"line"`
		Item       string `toml:"item"`
		Delimiters string `toml:"delimiters"`
	} `toml:"patterns"`
}

// LoadMapFile parses a TOML mapping file.
func LoadMapFile(path string) (*MapFile, error) {
	var mf MapFile
	if _, err := toml.DecodeFile(path, &mf); err != nil {
		return nil, fmt.Errorf("load map file: %w", err)
	}
	return &mf, nil
}

// MapFunc returns the mapping capability backed by the [phones] table.
// Phones absent from the table have no mapping and are dropped during
// conversion.
func (mf *MapFile) MapFunc() question.MapFunc {
	return func(phone string) []string {
		return mf.Phones[phone]
	}
}

// ParseConfig returns the parser configuration from the [patterns] section,
// falling back to the defaults for any field left empty.
func (mf *MapFile) ParseConfig() (question.Config, error) {
	cfg := question.DefaultConfig()
	if mf.Patterns.Line != "" {
		re, err := regexp.Compile(mf.Patterns.Line)
		if err != nil {
			return question.Config{}, fmt.Errorf("line pattern: %w", err)
		}
		cfg.LinePattern = re
	}
	if mf.Patterns.Item != "" {
		re, err := regexp.Compile(mf.Patterns.Item)
		if err != nil {
			return question.Config{}, fmt.Errorf("item pattern: %w", err)
		}
		cfg.ItemPattern = re
	}
	if mf.Patterns.Delimiters != "" {
		cfg.Delimiters = mf.Patterns.Delimiters
	}
	return cfg, nil
}

package question

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Config holds the parser's pattern configuration, passed by value.
// LinePattern must have at least two capture groups: group 1 is the question
// name, group 2 the raw item-list text. ItemPattern must have one capture
// group extracting the phone from an item token. Delimiters is the set of
// characters separating items inside the item list.
type Config struct {
	LinePattern *regexp.Regexp
	ItemPattern *regexp.Regexp
	Delimiters  string
}

// DefaultConfig recognizes lines of the shape
//
//	QS 'L_Nasal' {"m-*","n-*"}
//
// with items separated by comma or space.
func DefaultConfig() Config {
	return Config{
		LinePattern: regexp.MustCompile(`^QS\s+'L_([^']*)'\s*\{(.*)\}$`),
		ItemPattern: regexp.MustCompile(`^"(.+)-\*"$`),
		Delimiters:  ", ",
	}
}

// Load reads a question file from a text source. Lines that do not match
// the line pattern are skipped; a matching line whose item list contains a
// token the item pattern cannot extract a phone from is a fatal error, as
// is a line pattern with fewer than two capture groups.
func Load(r io.Reader, cfg Config) ([]*PhoneQuestion, error) {
	if cfg.LinePattern == nil || cfg.ItemPattern == nil {
		return nil, fmt.Errorf("question load: nil pattern in config")
	}
	if cfg.LinePattern.NumSubexp() < 2 {
		return nil, fmt.Errorf("question load: line pattern %q needs 2 capture groups, has %d",
			cfg.LinePattern, cfg.LinePattern.NumSubexp())
	}

	var questions []*PhoneQuestion
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		m := cfg.LinePattern.FindStringSubmatch(line)
		if m == nil {
			continue // comments and unrelated directives
		}
		name, itemText := m[1], m[2]
		if name == "" || itemText == "" {
			continue
		}

		q := New(name)
		tokens := strings.FieldsFunc(itemText, func(r rune) bool {
			return strings.ContainsRune(cfg.Delimiters, r)
		})
		for _, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			im := cfg.ItemPattern.FindStringSubmatch(tok)
			if len(im) < 2 {
				return nil, fmt.Errorf("question load: line %d: malformed item %q (pattern %q)",
					lineNum, tok, cfg.ItemPattern)
			}
			q.Add(im[1])
		}
		questions = append(questions, q)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}

// LoadFile reads a question file using the default configuration.
func LoadFile(path string) ([]*PhoneQuestion, error) {
	return LoadFileConfig(path, DefaultConfig())
}

// LoadFileConfig reads a question file with an explicit configuration.
func LoadFileConfig(path string, cfg Config) ([]*PhoneQuestion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question file: %w", err)
	}
	defer f.Close()
	return Load(f, cfg)
}

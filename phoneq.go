// Package phoneq builds phone question sets for decision-tree TTS training:
// it parses question files, remaps questions between phone inventories,
// deduplicates them, and completes singleton coverage against a phone set.
package phoneq

import (
	"fmt"

	"github.com/ieee0824/phoneq-go/phoneset"
	"github.com/ieee0824/phoneq-go/question"
)

// Result is the outcome of a question-set build.
type Result struct {
	Questions   []*question.PhoneQuestion
	PhoneSet    *phoneset.PhoneSet
	Warnings    []string                   // dropped-phone messages from remapping
	Diagnostics []question.ValidationError // inventory validation findings
}

// Option configures a build.
type Option func(*builder)

type builder struct {
	cfg      question.Config
	mapPhone question.MapFunc
	coverage bool
}

// WithParseConfig sets custom question-file patterns.
func WithParseConfig(cfg question.Config) Option {
	return func(b *builder) {
		b.cfg = cfg
	}
}

// WithPhoneMap remaps parsed questions through the mapping before
// deduplication.
func WithPhoneMap(mapPhone question.MapFunc) Option {
	return func(b *builder) {
		b.mapPhone = mapPhone
	}
}

// WithCoverage enables or disables singleton coverage completion against
// the phone set. Enabled by default.
func WithCoverage(enabled bool) Option {
	return func(b *builder) {
		b.coverage = enabled
	}
}

// Build loads a question file and a phone inventory, optionally remaps the
// questions, completes singleton coverage, and validates every question
// against the inventory. Validation findings are returned in
// Result.Diagnostics, not as an error.
func Build(questionPath, phoneSetPath string, opts ...Option) (*Result, error) {
	b := &builder{
		cfg:      question.DefaultConfig(),
		coverage: true,
	}
	for _, opt := range opts {
		opt(b)
	}

	questions, err := question.LoadFileConfig(questionPath, b.cfg)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	ps, err := phoneset.LoadFile(phoneSetPath)
	if err != nil {
		return nil, fmt.Errorf("load phone set: %w", err)
	}

	res := &Result{PhoneSet: ps}

	if b.mapPhone != nil {
		conv := &question.Converter{}
		questions = conv.ConvertAll(questions, b.mapPhone)
		res.Warnings = conv.Warnings
	}

	if b.coverage {
		questions = append(questions, question.MissingPhoneSet(questions, ps.Names())...)
	}

	for _, q := range questions {
		res.Diagnostics = append(res.Diagnostics, q.Validate(ps)...)
	}
	res.Questions = questions

	return res, nil
}

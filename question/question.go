package question

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ieee0824/phoneq-go/phoneset"
)

// PhoneQuestion is a named set of phones used as a yes/no split criterion
// in decision-tree clustering. Phones keep their insertion order; the type
// itself does not prevent duplicates (Add does).
type PhoneQuestion struct {
	Name   string
	Phones []string
}

// New creates an empty question with a name.
func New(name string) *PhoneQuestion {
	return &PhoneQuestion{
		Name:   name,
		Phones: []string{},
	}
}

// Add appends a phone unless it is already present.
func (q *PhoneQuestion) Add(phone string) {
	if q.Contains(phone) {
		return
	}
	q.Phones = append(q.Phones, phone)
}

// Contains reports whether phone is in the question. Exact, case-sensitive.
func (q *PhoneQuestion) Contains(phone string) bool {
	for _, p := range q.Phones {
		if p == phone {
			return true
		}
	}
	return false
}

// CanonicalKey returns the content identity of the question: its phones
// sorted ascending and joined with a single space. The stored phone order
// is not modified. Returns "" for a question with no phones.
func (q *PhoneQuestion) CanonicalKey() string {
	if len(q.Phones) == 0 {
		return ""
	}
	sorted := make([]string, len(q.Phones))
	copy(sorted, q.Phones)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}

// Default rendering templates: QS <name> {<items>} with comma-joined,
// unquoted items.
const (
	DefaultQuestionFormat = "QS %s {%s}"
	DefaultItemFormat     = "%s"
	DefaultItemDelimiter  = ","
)

// Render produces a textual form of the question. Each phone is passed
// through itemFormat, items are joined with delimiter, and the name and
// joined items are substituted into questionFormat. Returns "" for a
// question with no phones.
func (q *PhoneQuestion) Render(questionFormat, itemFormat, delimiter string) string {
	if len(q.Phones) == 0 {
		return ""
	}
	items := make([]string, len(q.Phones))
	for i, p := range q.Phones {
		items[i] = fmt.Sprintf(itemFormat, p)
	}
	return fmt.Sprintf(questionFormat, q.Name, strings.Join(items, delimiter))
}

// RenderDefault renders with the default QS template.
func (q *PhoneQuestion) RenderDefault() string {
	return q.Render(DefaultQuestionFormat, DefaultItemFormat, DefaultItemDelimiter)
}

// Inventory is the phone-lookup capability a question is validated against.
type Inventory interface {
	GetPhone(name string) (phoneset.Phone, bool)
}

// ErrorKind classifies a validation diagnostic.
type ErrorKind int

const (
	// UnrecognizedPhone marks a phone absent from the inventory.
	UnrecognizedPhone ErrorKind = iota
)

var kindMessages = map[ErrorKind]string{
	UnrecognizedPhone: "unrecognized phone %q in question %q",
}

// ValidationError is a single validation diagnostic.
type ValidationError struct {
	Kind     ErrorKind
	Phone    string
	Question string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf(kindMessages[e.Kind], e.Phone, e.Question)
}

// Validate checks every phone against the inventory and accumulates one
// diagnostic per unresolved phone. Returns nil when all phones resolve.
func (q *PhoneQuestion) Validate(inv Inventory) []ValidationError {
	var errs []ValidationError
	for _, p := range q.Phones {
		if _, ok := inv.GetPhone(p); !ok {
			errs = append(errs, ValidationError{
				Kind:     UnrecognizedPhone,
				Phone:    p,
				Question: q.Name,
			})
		}
	}
	return errs
}

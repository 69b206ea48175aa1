package csi

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/csiapi/internal/apierr"
)

type enum interface{ ~int }

type enumEntry[E enum] struct {
	value E
	name  string
	code  int
	since Version
}

// enumTable maps library values to host codes. Host enumerations only grow
// between releases, so each entry records the release that introduced it.
type enumTable[E enum] struct {
	kind    string
	entries []enumEntry[E]
}

func (t *enumTable[E]) lookup(e E) (enumEntry[E], bool) {
	for _, en := range t.entries {
		if en.value == e {
			return en, true
		}
	}
	return enumEntry[E]{}, false
}

func (t *enumTable[E]) name(e E) string {
	if en, ok := t.lookup(e); ok {
		return en.name
	}
	return fmt.Sprintf("%s(%d)", t.kind, int(e))
}

func (t *enumTable[E]) parse(s string) (E, error) {
	for _, en := range t.entries {
		if strings.EqualFold(en.name, s) {
			return en.value, nil
		}
	}
	return 0, apierr.Invalid("Parse", "unknown %s %q", t.kind, s)
}

// names lists every value name in table order.
func (t *enumTable[E]) names() []string {
	out := make([]string, len(t.entries))
	for i, en := range t.entries {
		out[i] = en.name
	}
	return out
}

// toCode converts e for a host of version v.
func (t *enumTable[E]) toCode(op string, v Version, e E) (int, error) {
	en, ok := t.lookup(e)
	if !ok {
		return 0, apierr.Invalid(op, "unknown %s %d", t.kind, int(e))
	}
	if v < en.since {
		return 0, apierr.Unsupportedf(op, "%s %s needs host %s, connected to %s", t.kind, en.name, en.since, v)
	}
	return en.code, nil
}

// filterCode is toCode where the zero value selects every type, the host's
// convention for Count and GetNameList filters.
func (t *enumTable[E]) filterCode(op string, v Version, e E) (int, error) {
	if e == 0 {
		return 0, nil
	}
	return t.toCode(op, v, e)
}

func (t *enumTable[E]) fromCode(op string, code int) (E, error) {
	for _, en := range t.entries {
		if en.code == code {
			return en.value, nil
		}
	}
	return 0, apierr.Malformed(op, "unknown %s code %d", t.kind, code)
}

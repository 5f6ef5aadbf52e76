// Package tmpl fills {SLOT} placeholders in an HTML document from typed bindings.
//
// Every placeholder found in the source must be declared as a Slot, and every
// required Slot must appear in the source, so a template that would leave a literal
// {TOKEN} in the output fails at parse time rather than at render time.
package tmpl

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"
	"sort"
	"strings"
)

var placeholder = regexp.MustCompile(`\{([A-Z][A-Z0-9_]*)\}`)

// Slot declares one placeholder. Raw slots are inserted without HTML escaping.
type Slot struct {
	Name     string
	Required bool
	Raw      bool
}

func Required(name string) Slot { return Slot{Name: name, Required: true} }

func Optional(name string) Slot { return Slot{Name: name} }

func RawOptional(name string) Slot { return Slot{Name: name, Raw: true} }

// Bindings maps slot names to values.
type Bindings map[string]string

type chunk struct {
	text string
	slot string
}

type Template struct {
	chunks []chunk
	slots  map[string]Slot
}

func Parse(src string, slots ...Slot) (*Template, error) {
	t := &Template{slots: make(map[string]Slot, len(slots))}
	for _, s := range slots {
		if _, dup := t.slots[s.Name]; dup {
			return nil, fmt.Errorf("slot %s declared twice", s.Name)
		}
		t.slots[s.Name] = s
	}

	used := map[string]bool{}
	var undeclared []string
	last := 0
	for _, m := range placeholder.FindAllStringSubmatchIndex(src, -1) {
		name := src[m[2]:m[3]]
		if _, ok := t.slots[name]; !ok {
			undeclared = append(undeclared, name)
			continue
		}
		if m[0] > last {
			t.chunks = append(t.chunks, chunk{text: src[last:m[0]]})
		}
		t.chunks = append(t.chunks, chunk{slot: name})
		used[name] = true
		last = m[1]
	}
	if last < len(src) {
		t.chunks = append(t.chunks, chunk{text: src[last:]})
	}

	if len(undeclared) > 0 {
		return nil, fmt.Errorf("undeclared placeholders: %s", strings.Join(undeclared, ", "))
	}
	var missing []string
	for name, s := range t.slots {
		if s.Required && !used[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("template lacks required placeholders: %s", strings.Join(missing, ", "))
	}
	return t, nil
}

// Execute writes the document. Unknown bindings and unbound required slots are errors;
// unbound optional slots render as nothing.
func (t *Template) Execute(w io.Writer, b Bindings) error {
	for name := range b {
		if _, ok := t.slots[name]; !ok {
			return fmt.Errorf("binding %s has no slot", name)
		}
	}
	for name, s := range t.slots {
		if _, ok := b[name]; s.Required && !ok {
			return fmt.Errorf("required slot %s is not bound", name)
		}
	}

	var buf bytes.Buffer
	for _, c := range t.chunks {
		if c.slot == "" {
			buf.WriteString(c.text)
			continue
		}
		v := b[c.slot]
		if !t.slots[c.slot].Raw {
			v = html.EscapeString(v)
		}
		buf.WriteString(v)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (t *Template) Render(b Bindings) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

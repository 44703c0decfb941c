// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/parse-guard/internal/validators"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField is a labelled text input. Choices turn it into a selector
// cycled with ←/→; the input then only displays the current choice.
type formField struct {
	key     string
	label   string
	input   textinput.Model
	choices []string
	choice  int
}

func newTextField(key, label, placeholder string, limit int) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return formField{key: key, label: label, input: in}
}

func newPasswordField(key, label string) formField {
	f := newTextField(key, label, "********", 128)
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'
	return f
}

func newChoiceField(key, label string, choices []string, current string) formField {
	f := formField{key: key, label: label, input: textinput.New(), choices: choices}
	for i, c := range choices {
		if c == current {
			f.choice = i
		}
	}
	return f
}

func (f *formField) value() string {
	if f.choices != nil {
		return f.choices[f.choice]
	}
	return f.input.Value()
}

func (f *formField) cycle(step int) {
	n := len(f.choices)
	f.choice = (f.choice + step + n) % n
}

// form keeps focus over a list of fields and the per-field errors.
type form struct {
	fields []formField
	focus  int
	errs   validators.FormErrors
}

func (f *form) init() tea.Cmd {
	f.focus = 0
	return f.fields[0].input.Focus()
}

func (f *form) field(key string) *formField {
	for i := range f.fields {
		if f.fields[i].key == key {
			return &f.fields[i]
		}
	}
	return nil
}

func (f *form) value(key string) string {
	if field := f.field(key); field != nil {
		return field.value()
	}
	return ""
}

func (f *form) move(step int) tea.Cmd {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + step + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].input.Focus()
}

// update routes msg to the focused field.
func (f *form) update(msg tea.Msg) tea.Cmd {
	field := &f.fields[f.focus]
	if field.choices != nil {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "left":
				field.cycle(-1)
			case "right", " ":
				field.cycle(1)
			}
		}
		return nil
	}

	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	return cmd
}

func (f *form) view(b *strings.Builder) {
	width := 0
	for _, field := range f.fields {
		width = max(width, len(field.label))
	}

	for i, field := range f.fields {
		cursor := " "
		if i == f.focus {
			cursor = ">"
		}

		value := field.input.View()
		if field.choices != nil {
			value = fmt.Sprintf("‹ %s ›", badge(field.value()))
		}

		fmt.Fprintf(b, "%s %-*s │ %s\n", cursor, width, field.label, value)
		if msg := f.errs[field.key]; msg != "" {
			fmt.Fprintf(b, "  %-*s │ %s\n", width, "", errorStyle.Render(msg))
		}
	}
}

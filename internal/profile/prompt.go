package profile

import (
	"fmt"
	"strings"
)

// Prompt renders the profile as a classification-assistant instruction
// block: the schema, keyword hints per column, and detailed keyword notes
// when values, descriptions, or weights are present. Operators paste this
// into an LLM when they want model-assisted classification alongside the
// deterministic engine.
func (p *Profile) Prompt() string {
	var b strings.Builder
	b.WriteString("You are a text classification assistant.\n")
	b.WriteString("Classify the input text into the following schema:\n")

	for _, col := range p.Columns {
		switch {
		case col.Type == "enum" && len(col.Options) > 0:
			fmt.Fprintf(&b, "- %s: one of [%s]\n", col.Name, strings.Join(col.Options, ", "))
		case col.Type == "" || col.Type == "list":
			fmt.Fprintf(&b, "- %s: list of strings\n", col.Name)
		default:
			fmt.Fprintf(&b, "- %s: string\n", col.Name)
		}
		if col.Description != "" && col.Type != "enum" {
			fmt.Fprintf(&b, "  Guidance for %s: %s\n", col.Name, col.Description)
		}
	}

	b.WriteString("Use these keyword hints:\n")
	for _, col := range p.Columns {
		entries := p.Keywords[col.Name]
		if len(entries) == 0 {
			continue
		}
		hints := make([]string, len(entries))
		for i, kw := range entries {
			hints[i] = kw.Keyword
		}
		fmt.Fprintf(&b, "- %s: %s\n", col.Name, strings.Join(hints, ", "))
	}

	if p.hasKeywordDetails() {
		b.WriteString("Keyword details:\n")
		for _, col := range p.Columns {
			for _, kw := range p.Keywords[col.Name] {
				line := fmt.Sprintf("- %s: %q", col.Name, kw.Keyword)
				if kw.Value != "" {
					line += " => " + kw.Value
				}
				if kw.Description != "" {
					line += " - " + kw.Description
				}
				if kw.Weight != 0 {
					line += fmt.Sprintf(" [weight=%g]", kw.Weight)
				}
				b.WriteString(line + "\n")
			}
		}
	}

	b.WriteString("Return JSON with keys matching the schema.")
	return b.String()
}

func (p *Profile) hasKeywordDetails() bool {
	for _, entries := range p.Keywords {
		for _, kw := range entries {
			if kw.Value != "" || kw.Description != "" || kw.Weight != 0 {
				return true
			}
		}
	}
	return false
}

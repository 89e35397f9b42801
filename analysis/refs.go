package analysis

import "strings"

// findReferences filters query matches down to captures whose text equals
// the requested symbol.
func findReferences(
	matches []QueryMatch, source []byte, symbolName string, includeContext bool,
) []Reference {
	var refs []Reference
	lines := strings.Split(string(source), "\n")

	for _, match := range matches {
		for _, capture := range match.Captures {
			if capture.Text != symbolName {
				continue
			}

			ref := Reference{
				Symbol: symbolName,
				File:   match.File,
				Position: Position{
					Line:   capture.Range.Start.Line,
					Column: capture.Range.Start.Column,
				},
			}

			switch capture.Name {
			case "call":
				ref.Kind = "call"
			case "type_ref", "composite_type":
				ref.Kind = "type_ref"
			case "field":
				ref.Kind = "field_access"
			case "ident", "short_var":
				ref.Kind = "identifier"
			default:
				ref.Kind = "reference"
			}

			if includeContext {
				lineIdx := capture.Range.Start.Line - 1
				if lineIdx >= 0 && lineIdx < len(lines) {
					ref.Context = strings.TrimSpace(lines[lineIdx])
				}
			}

			refs = append(refs, ref)
		}
	}

	return refs
}

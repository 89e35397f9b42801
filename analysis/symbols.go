package analysis

import (
	"strings"
	"unicode"
)

// extractSymbols turns query matches into symbols, applying the visibility
// filter.
func extractSymbols(
	matches []QueryMatch, source []byte, visibility string, includeSource bool, maxSourceLines int,
) []Symbol {
	var symbols []Symbol

	for _, match := range matches {
		sym := parseSymbolFromMatch(match, includeSource, maxSourceLines)
		if sym == nil {
			continue
		}

		switch visibility {
		case "public":
			if sym.Visibility != "public" {
				continue
			}
		case "private":
			if sym.Visibility != "private" {
				continue
			}
		}

		symbols = append(symbols, *sym)
	}

	return symbols
}

// outerCaptures are the capture names that span a whole declaration, in
// the order they are checked. Const and var come first because their
// patterns may also carry a @type capture for type annotations.
var outerCaptures = []string{"const", "var", "function", "method", "class", "interface", "type"}

func parseSymbolFromMatch(match QueryMatch, includeSource bool, maxSourceLines int) *Symbol {
	captures := make(map[string]CaptureResult)
	for _, c := range match.Captures {
		captures[c.Name] = c
	}

	var sym Symbol

	switch {
	case hasCapture(captures, "const"):
		sym.Kind = "const"
	case hasCapture(captures, "var"):
		sym.Kind = "var"
	case hasCapture(captures, "function"):
		sym.Kind = "function"
		sym.Signature = buildFuncSignature(captures)
	case hasCapture(captures, "method"):
		sym.Kind = "method"
		if recv, ok := captures["receiver"]; ok {
			sym.Receiver = extractReceiverType(recv.Text)
		}
		sym.Signature = buildFuncSignature(captures)
	case hasCapture(captures, "class"):
		sym.Kind = "class"
	case hasCapture(captures, "interface"):
		sym.Kind = "interface"
	case hasCapture(captures, "type"):
		if typeSpec, ok := captures["type_def"]; ok {
			switch {
			case strings.HasPrefix(typeSpec.NodeType, "struct"):
				sym.Kind = "struct"
			case strings.HasPrefix(typeSpec.NodeType, "interface"):
				sym.Kind = "interface"
			default:
				sym.Kind = "type"
			}
		} else {
			sym.Kind = "type"
		}
	default:
		return nil
	}

	if name, ok := captures["name"]; ok {
		sym.Name = name.Text
		sym.Range = name.Range
	}
	if sym.Name == "" {
		return nil
	}

	sym.Visibility = getVisibility(sym.Name)

	if outer, ok := outerCapture(captures); ok {
		sym.Range = outer.Range
		if includeSource {
			sym.Source = truncateSource(outer.Text, maxSourceLines)
		}
	}

	sym.File = match.File
	return &sym
}

func hasCapture(captures map[string]CaptureResult, name string) bool {
	_, ok := captures[name]
	return ok
}

func outerCapture(captures map[string]CaptureResult) (CaptureResult, bool) {
	for _, name := range outerCaptures {
		if c, ok := captures[name]; ok {
			return c, true
		}
	}
	return CaptureResult{}, false
}

func getVisibility(name string) string {
	if len(name) == 0 {
		return "private"
	}
	if strings.HasPrefix(name, "_") {
		return "private"
	}
	if unicode.IsUpper(rune(name[0])) {
		return "public"
	}
	return "private"
}

func buildFuncSignature(captures map[string]CaptureResult) string {
	var sb strings.Builder
	sb.WriteString("func")

	if recv, ok := captures["receiver"]; ok {
		sb.WriteString(" ")
		sb.WriteString(recv.Text)
	}

	if name, ok := captures["name"]; ok {
		sb.WriteString(" ")
		sb.WriteString(name.Text)
	}

	if params, ok := captures["params"]; ok {
		sb.WriteString(params.Text)
	}

	if result, ok := captures["result"]; ok {
		sb.WriteString(" ")
		sb.WriteString(result.Text)
	}

	return sb.String()
}

func extractReceiverType(receiver string) string {
	// Extract type from receiver like "(r *MyType)" -> "MyType"
	receiver = strings.TrimPrefix(receiver, "(")
	receiver = strings.TrimSuffix(receiver, ")")
	parts := strings.Fields(receiver)
	if len(parts) >= 2 {
		t := parts[len(parts)-1]
		return strings.TrimPrefix(t, "*")
	}
	if len(parts) == 1 {
		return strings.TrimPrefix(parts[0], "*")
	}
	return receiver
}

func truncateSource(source string, maxLines int) string {
	if maxLines <= 0 {
		return source
	}

	lines := strings.Split(source, "\n")
	if len(lines) <= maxLines {
		return source
	}

	return strings.Join(lines[:maxLines], "\n") + "\n..."
}

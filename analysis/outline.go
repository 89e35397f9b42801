package analysis

import "strings"

// outlineKinds maps outline capture names to the symbol kind and the
// capture carrying the symbol name.
var outlineKinds = []struct {
	capture string
	name    string
	kind    string
}{
	{"function", "func_name", "function"},
	{"method", "method_name", "method"},
	{"class", "class_name", "class"},
	{"struct", "type_name", "struct"},
	{"interface", "type_name", "interface"},
	{"type_alias", "type_name", "type"},
	{"type_ptr", "type_name", "type"},
	{"type_slice", "type_name", "type"},
	{"type_map", "type_name", "type"},
	{"type_func", "type_name", "type"},
	{"const", "const_name", "const"},
	{"var", "var_name", "var"},
}

// buildOutline assembles a file outline from outline-query matches.
func buildOutline(job FileJob, matches []QueryMatch, includeSource bool, maxSourceLines int) FileOutline {
	outline := FileOutline{
		File:     job.DisplayPath,
		Language: job.Language,
		Symbols:  []Symbol{},
		Imports:  []ImportInfo{},
	}

	for _, match := range matches {
		captures := make(map[string]CaptureResult)
		for _, c := range match.Captures {
			captures[c.Name] = c
		}

		if pkg, ok := captures["package"]; ok {
			outline.Package = pkg.Text
			continue
		}

		if path, ok := captures["path"]; ok {
			imp := ImportInfo{
				Path: strings.Trim(path.Text, `"'`),
			}
			if alias, ok := captures["alias"]; ok {
				imp.Alias = alias.Text
			}
			outline.Imports = append(outline.Imports, imp)
			continue
		}

		for _, k := range outlineKinds {
			decl, found := captures[k.capture]
			if !found {
				continue
			}
			name, found := captures[k.name]
			if !found {
				break
			}

			sym := Symbol{
				Kind:       k.kind,
				Name:       name.Text,
				File:       job.DisplayPath,
				Range:      decl.Range,
				Visibility: getVisibility(name.Text),
			}
			if recv, ok := captures["receiver_type"]; ok {
				sym.Receiver = strings.TrimPrefix(recv.Text, "*")
			}
			if includeSource {
				sym.Source = truncateSource(decl.Text, maxSourceLines)
			}
			outline.Symbols = append(outline.Symbols, sym)
			break
		}
	}

	return outline
}

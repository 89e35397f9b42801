package analyzers

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestDataDriven exercises the registry through a scripted command
// language. Each testdata file gets a fresh registry.
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		r := NewRegistry()

		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "register":
				return handleRegister(t, d, r)
			case "register-default":
				return handleRegisterDefault(t, d, r)
			case "defaults":
				r.RegisterDefaults()
				return "ok"
			case "lookup-file":
				return handleLookupFile(t, d, r)
			case "lookup-lang":
				return handleLookupLang(t, d, r)
			case "extensions":
				return formatExtensions(r.Extensions())
			case "analyzers":
				return formatAnalyzers(r.Analyzers())
			default:
				t.Fatalf("unknown command: %s", d.Cmd)
				return ""
			}
		})
	})
}

// handleRegister registers a stub analyzer from language and exts args.
func handleRegister(t *testing.T, d *datadriven.TestData, r *Registry) string {
	var language, exts string
	d.ScanArgs(t, "language", &language)
	d.ScanArgs(t, "exts", &exts)

	r.Register(&stubAnalyzer{language: language, exts: strings.Split(exts, ",")})
	return "ok"
}

// handleRegisterDefault registers a DefaultAnalyzer so type grouping can be
// observed against stub registrations.
func handleRegisterDefault(t *testing.T, d *datadriven.TestData, r *Registry) string {
	var language, exts string
	d.ScanArgs(t, "language", &language)
	d.ScanArgs(t, "exts", &exts)

	r.Register(NewDefaultAnalyzer(language, strings.Split(exts, ",")...))
	return "ok"
}

func handleLookupFile(t *testing.T, d *datadriven.TestData, r *Registry) string {
	var file string
	d.ScanArgs(t, "file", &file)

	a, ok := r.ForFile(file)
	if !ok {
		return "not found"
	}
	return a.LanguageName()
}

func handleLookupLang(t *testing.T, d *datadriven.TestData, r *Registry) string {
	var name string
	d.ScanArgs(t, "name", &name)

	a, ok := r.Get(name)
	if !ok {
		return "not found"
	}
	return fmt.Sprintf("%s %v", a.LanguageName(), a.SupportedExtensions())
}

func formatExtensions(exts map[string]string) string {
	keys := make([]string, 0, len(exts))
	for ext := range exts {
		keys = append(keys, ext)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, ext := range keys {
		fmt.Fprintf(&sb, "%s -> %s\n", ext, exts[ext])
	}
	return sb.String()
}

func formatAnalyzers(groups map[string][]string) string {
	keys := make([]string, 0, len(groups))
	for name := range groups {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, name := range keys {
		exts := append([]string(nil), groups[name]...)
		sort.Strings(exts)
		fmt.Fprintf(&sb, "%s: %s\n", name, strings.Join(exts, " "))
	}
	return sb.String()
}

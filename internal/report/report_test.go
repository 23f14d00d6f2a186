package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"msgtool/internal/catalog"
)

func sampleReport() *catalog.Report {
	return &catalog.Report{
		Catalog: "src/net/example/Msg.java",
		Entries: 3,
		Sources: 2,
		Unused:  []string{"bye"},
		Unattributed: []catalog.Usage{
			{Path: "src/App.java", Line: 12, Text: "return Msg.unknown.get();"},
		},
		Ambiguous: []catalog.Usage{
			{Path: "src/App.java", Line: 20, Text: "a(Msg.hello, Msg.world);", Names: []string{"hello", "world"}},
		},
		Locales: []catalog.LocaleReport{
			{Path: "resources/lang/Resource.properties", Locale: language.Und},
			{
				Path:         "resources/lang/Resource_de.properties",
				Locale:       language.German,
				Orphaned:     []string{"obsolete"},
				Missing:      []string{"bye", "world"},
				Untranslated: []string{"hello"},
				Malformed: []*catalog.MalformedResourceLineError{
					{Path: "resources/lang/Resource_de.properties", Line: 4, Text: "broken"},
				},
			},
		},
		Warnings: []catalog.Warning{
			{Kind: catalog.SkippedArtifact, Path: "src/Locked.java", Message: "permission denied"},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	const want = `Warning: src/Locked.java: skipped: permission denied
Warning: Line 12 in file src/App.java was skipped: return Msg.unknown.get();
Note: Line 20 in file src/App.java references hello, world
The following message strings in Msg.java seem to be out of use:
  * bye

resources/lang/Resource.properties: No unused entries found.

resources/lang/Resource_de.properties contains message strings not used in Msg.java:
  * obsolete
resources/lang/Resource_de.properties lacks translations for:
  * bye
  * world
resources/lang/Resource_de.properties still has placeholder values for:
  * hello
resources/lang/Resource_de.properties:4: expected key=value: "broken"

`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("unexpected text report: diff (-want +got):\n%s", diff)
	}
}

func TestWriteTextClean(t *testing.T) {
	var buf bytes.Buffer
	rep := &catalog.Report{Catalog: "Msg.java", Entries: 1, Sources: 1}
	if err := WriteText(&buf, rep); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("No unused message strings in Msg.java found.\n\n", buf.String()); diff != "" {
		t.Errorf("unexpected text report: diff (-want +got):\n%s", diff)
	}
}

func TestFormatMarkdown(t *testing.T) {
	b, err := FormatMarkdown(sampleReport())
	if err != nil {
		t.Fatal(err)
	}
	got := string(b)
	for _, want := range []string{
		"Unused entries",
		"`bye`",
		"`return Msg.unknown.get();`",
		"Ambiguous references",
		"de.properties (de)",
		"Missing translations",
		"`obsolete`",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown report does not contain %q:\n%s", want, got)
		}
	}
}

func TestCode(t *testing.T) {
	for in, want := range map[string]string{
		"plain":    "`plain`",
		"a`b":      "``a`b``",
		"`quoted`": "`` `quoted` ``",
		"a``b`":    "``` a``b` ```",
	} {
		if got := code(in); got != want {
			t.Errorf("code(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"<title>Message catalog src/net/example/Msg.java</title>",
		`<h2 id="unused-entries">Unused entries</h2>`,
		"<li><code>bye</code></li>",
		"</html>\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("html report does not contain %q:\n%s", want, got)
		}
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	var got yamlReport
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Clean {
		t.Error("clean = true for a report with findings")
	}
	want := []yamlLocale{
		{Path: "resources/lang/Resource.properties", Locale: "default"},
		{
			Path:         "resources/lang/Resource_de.properties",
			Locale:       "de",
			Orphaned:     []string{"obsolete"},
			Missing:      []string{"bye", "world"},
			Untranslated: []string{"hello"},
			Malformed:    []int{4},
		},
	}
	if diff := cmp.Diff(want, got.Resources); diff != "" {
		t.Errorf("unexpected resources: diff (-want +got):\n%s", diff)
	}
}

func TestWriteFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "report.html")
	if err := os.WriteFile(fn, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(fn, sampleReport(), HTML); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), "<!DOCTYPE html>") {
		t.Errorf("%s does not start with the html preamble:\n%s", fn, b)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Error("ParseFormat(pdf) succeeded")
	}
}

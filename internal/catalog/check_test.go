package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/language"
)

var tagComparer = cmp.Comparer(func(a, b language.Tag) bool { return a == b })

func TestCheck(t *testing.T) {
	cat := mustParse(t, "public enum Msg {\n\thello,\n\tbye,\n;")
	sources := []Source{
		{Path: "src/App.java", Text: []byte("class App {\n\tString s = Msg.hello.value();\n}\n")},
	}
	resources := []*Resource{
		ParseResource("lang/Resource.properties", []byte("hello=Hi\n")),
	}

	got := Check(cat, sources, resources)
	want := &Report{
		Catalog: "Msg.java",
		Entries: 2,
		Sources: 1,
		Unused:  []string{"bye"},
		Locales: []LocaleReport{
			{
				Path:    "lang/Resource.properties",
				Locale:  language.Und,
				Missing: []string{"bye"},
			},
		},
	}
	if diff := cmp.Diff(want, got, tagComparer, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("unexpected report: diff (-want +got):\n%s", diff)
	}
	if got.Clean() {
		t.Error("Clean() = true, want false")
	}
}

func TestCheckFindings(t *testing.T) {
	cat := mustParse(t, "public enum Msg {\n\ta,\n\tb,\n\tc,\n;")
	sources := []Source{
		{Path: "A.java", Text: []byte("Msg.a.value();\nMsg.typo.value();\nfoo(Msg.b, Msg.c);\n")},
		{Path: "B.java", Text: []byte("Msg.valueOf(name);\n")},
	}
	resources := []*Resource{
		ParseResource("Resource.properties", []byte("a=A\nb=B\nc=C\n")),
		ParseResource("Resource_fr.properties", []byte("a=A\nold=O\nb=B\nb=B2\noops\n")),
	}

	got := Check(cat, sources, resources)
	if len(got.Unused) != 0 {
		t.Errorf("Unused = %v, want none", got.Unused)
	}
	wantUnattributed := []Usage{
		{Path: "A.java", Line: 2, Text: "Msg.typo.value();"},
		{Path: "B.java", Line: 1, Text: "Msg.valueOf(name);"},
	}
	if diff := cmp.Diff(wantUnattributed, got.Unattributed); diff != "" {
		t.Errorf("unexpected unattributed lines: diff (-want +got):\n%s", diff)
	}
	wantAmbiguous := []Usage{
		{Path: "A.java", Line: 3, Text: "foo(Msg.b, Msg.c);", Names: []string{"b", "c"}},
	}
	if diff := cmp.Diff(wantAmbiguous, got.Ambiguous); diff != "" {
		t.Errorf("unexpected ambiguous lines: diff (-want +got):\n%s", diff)
	}
	wantLocales := []LocaleReport{
		{Path: "Resource.properties", Locale: language.Und},
		{
			Path:       "Resource_fr.properties",
			Locale:     language.French,
			Orphaned:   []string{"old"},
			Missing:    []string{"c"},
			Duplicates: []string{"b"},
			Malformed: []*MalformedResourceLineError{
				{Path: "Resource_fr.properties", Line: 5, Text: "oops"},
			},
		},
	}
	if diff := cmp.Diff(wantLocales, got.Locales, tagComparer, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("unexpected locale reports: diff (-want +got):\n%s", diff)
	}
	if !got.Locales[0].Clean() {
		t.Error("Resource.properties: Clean() = false, want true")
	}
}

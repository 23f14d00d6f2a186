package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScan(t *testing.T) {
	s := NewScanner("Msg.", []string{"greeting", "greetingLong", "bye"})
	src := []byte(`class A {
	String a = Msg.greeting.format();
	String b = Msg.greetingLong.value();
	String c = Msg.unknownName.x;
	String d = Msg.greeting.value() + Msg.bye.value();
	String e = MyMsg.bye.value();
	String f = net.example.Msg.bye.value();
	String g = Msg.greeting.value() + Msg.greeting.value();
}
`)
	want := []Usage{
		{Path: "A.java", Line: 2, Text: "String a = Msg.greeting.format();", Names: []string{"greeting"}},
		{Path: "A.java", Line: 3, Text: "String b = Msg.greetingLong.value();", Names: []string{"greetingLong"}},
		{Path: "A.java", Line: 4, Text: "String c = Msg.unknownName.x;"},
		{Path: "A.java", Line: 5, Text: "String d = Msg.greeting.value() + Msg.bye.value();", Names: []string{"greeting", "bye"}},
		{Path: "A.java", Line: 7, Text: "String f = net.example.Msg.bye.value();", Names: []string{"bye"}},
		{Path: "A.java", Line: 8, Text: "String g = Msg.greeting.value() + Msg.greeting.value();", Names: []string{"greeting"}},
	}
	got := s.Scan("A.java", src)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected usages: diff (-want +got):\n%s", diff)
	}
	if !got[2].Skipped() {
		t.Errorf("%q: Skipped() = false, want true", got[2].Text)
	}
	if !got[3].Ambiguous() {
		t.Errorf("%q: Ambiguous() = false, want true", got[3].Text)
	}
	if got[5].Ambiguous() {
		t.Errorf("%q: Ambiguous() = true, want false", got[5].Text)
	}
}

func TestReferences(t *testing.T) {
	for _, tt := range []struct {
		line string
		want []string
	}{
		{line: "Msg.a", want: []string{"a"}},
		{line: "x(Msg.a_b.value())", want: []string{"a_b"}},
		{line: "Msg.", want: []string{""}},
		{line: "XMsg.a", want: nil},
		{line: "Msg.größe.value()", want: []string{"größe"}},
	} {
		var got []string
		for _, sp := range references(tt.line, "Msg.") {
			got = append(got, tt.line[sp.nameStart:sp.nameEnd])
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("references(%q): diff (-want +got):\n%s", tt.line, diff)
		}
	}
}

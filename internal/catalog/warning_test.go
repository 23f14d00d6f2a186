package catalog

import "testing"

func TestWarningString(t *testing.T) {
	for _, tt := range []struct {
		w    Warning
		want string
	}{
		{
			w:    Warning{Kind: SkippedArtifact, Path: "lang/Resource_de.properties", Message: `missing target entry "a", file omitted`},
			want: `lang/Resource_de.properties: skipped: missing target entry "a", file omitted`,
		},
		{
			w:    Warning{Kind: TrailingPrefix, Path: "A.java", Line: 3, Message: `"Msg." omitted: return Msg.`},
			want: `A.java:3: trailing prefix: "Msg." omitted: return Msg.`,
		},
		{
			w:    Warning{Kind: WarningKind(42), Path: "A.java"},
			want: "A.java: WarningKind(42): ",
		},
	} {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

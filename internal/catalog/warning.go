package catalog

import "fmt"

type WarningKind int

const (
	// SkippedArtifact is a resource or source file an edit had to leave
	// alone, or that could not be read.
	SkippedArtifact WarningKind = iota
	// TrailingPrefix is a source line ending in the reference prefix; the
	// entry name continues on the next line and cannot be rewritten safely.
	TrailingPrefix
)

var warningKindNames = map[WarningKind]string{
	SkippedArtifact: "skipped",
	TrailingPrefix:  "trailing prefix",
}

func (k WarningKind) String() string {
	if s, ok := warningKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// Warning is a non-fatal finding. Warnings never abort an operation.
type Warning struct {
	Kind    WarningKind
	Path    string
	Line    int // 1-based, 0 for file-level warnings
	Message string
}

func (w Warning) String() string {
	if w.Line == 0 {
		return fmt.Sprintf("%s: %s: %s", w.Path, w.Kind, w.Message)
	}
	return fmt.Sprintf("%s:%d: %s: %s", w.Path, w.Line, w.Kind, w.Message)
}

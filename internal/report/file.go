package report

import (
	"github.com/google/renameio"

	"msgtool/internal/catalog"
)

// WriteFile renders rep into fn, replacing any previous report atomically.
func WriteFile(fn string, rep *catalog.Report, f Format) error {
	out, err := renameio.TempFile("", fn)
	if err != nil {
		return err
	}
	defer out.Cleanup()

	if err := Write(out, rep, f); err != nil {
		return err
	}
	return out.CloseAtomicallyReplace()
}

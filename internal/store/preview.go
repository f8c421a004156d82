package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
	"github.com/aymanbagabas/go-udiff"
)

// Preview returns a unified diff between the file at path and what SaveFile
// would write there. A missing file diffs against empty content; an empty
// result means saving would not change the file.
func Preview(path string, transactions []core.Transaction) (string, error) {
	current, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: read %s: %w", core.ErrIO, path, err)
	}

	var next bytes.Buffer
	if len(transactions) > 0 {
		if err := Save(&next, transactions); err != nil {
			return "", err
		}
	}

	return udiff.Unified(path, path+" (unsaved)", string(current), next.String()), nil
}

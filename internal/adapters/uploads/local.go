package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Local writes uploaded images into a directory served as static files.
type Local struct {
	dir string
	now func() time.Time
}

func NewLocal(dir string) *Local { return &Local{dir: dir, now: time.Now} }

func (l *Local) Dir() string { return l.dir }

// Save streams r to a fresh file named images-<unixmilli>-<uuid><ext> and
// returns that name.
func (l *Local) Save(ctx context.Context, ext string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	name := fmt.Sprintf("images-%d-%s%s", l.now().UnixMilli(), uuid.NewString(), ext)
	p := filepath.Join(l.dir, name)

	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", p, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(p)
		return "", fmt.Errorf("write %s: %w", p, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(p)
		return "", fmt.Errorf("close %s: %w", p, err)
	}
	return name, nil
}

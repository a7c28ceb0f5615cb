package iconfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rook-computer/alerticon/internal/system"
)

// File is one output artifact.
type File struct {
	Path string
	Data []byte
}

type Writer interface {
	WriteAll(ctx context.Context, files []File) error
}

type NoopWriter struct{}

func (NoopWriter) WriteAll(ctx context.Context, files []File) error { return nil }

// FileWriter stages every file in a temp file next to its destination and
// renames them into place only once all of them were written, so a failure
// leaves no new or truncated outputs behind.
type FileWriter struct {
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewFileWriter() *FileWriter { return &FileWriter{} }

func (w *FileWriter) WriteAll(ctx context.Context, files []File) (err error) {
	staged := make([]string, 0, len(files))
	defer func() {
		if err == nil {
			return
		}
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
		w.errorf("write failed, removed %d staged file(s): %v", len(staged), err)
	}()

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		tmp, err := stage(f)
		if err != nil {
			return err
		}
		staged = append(staged, tmp)
	}

	for i, f := range files {
		if err := os.Rename(staged[i], f.Path); err != nil {
			return fmt.Errorf("install %s: %w", f.Path, err)
		}
		w.infof("wrote %s (%d bytes)", f.Path, len(f.Data))
	}
	return nil
}

// stage writes f.Data to a synced temp file in f.Path's directory and
// returns the temp file's name.
func stage(f File) (string, error) {
	dir := filepath.Dir(f.Path)
	if err := system.CheckWritableDir(dir); err != nil {
		return "", fmt.Errorf("output directory for %s: %w", f.Path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create %s: %w", f.Path, err)
	}
	name := tmp.Name()
	fail := func(err error) (string, error) {
		_ = tmp.Close()
		_ = os.Remove(name)
		return "", fmt.Errorf("write %s: %w", f.Path, err)
	}

	if _, err := tmp.Write(f.Data); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("write %s: %w", f.Path, err)
	}
	return name, nil
}

func (w *FileWriter) infof(format string, args ...interface{}) {
	if w.Logger != nil {
		w.Logger.Infof("iconfile", format, args...)
	}
}

func (w *FileWriter) errorf(format string, args ...interface{}) {
	if w.Logger != nil {
		w.Logger.Errorf("iconfile", format, args...)
	}
}

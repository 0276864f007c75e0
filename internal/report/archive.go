package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Archive copies a finished report into a per-date archive directory so
// reruns overwrite the working copy without losing history.
func Archive(reportPath, archiveDir string, runDate time.Time) (string, error) {
	dir := filepath.Join(archiveDir, runDate.Format("2006-01-02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating archive dir: %w", err)
	}

	dst := filepath.Join(dir, filepath.Base(reportPath))
	if err := copyFile(reportPath, dst); err != nil {
		return "", fmt.Errorf("archiving report: %w", err)
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

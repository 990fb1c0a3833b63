package update

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Installer copies an extracted driver binary into a target directory,
// backing up any file already there.
type Installer struct {
	targetDir string
}

// NewInstaller creates an installer for the given target directory.
func NewInstaller(targetDir string) *Installer {
	return &Installer{targetDir: targetDir}
}

// TargetDir returns the directory the driver will be installed into.
func (i *Installer) TargetDir() string {
	return i.targetDir
}

// InstalledPath returns where the given source binary would land.
func (i *Installer) InstalledPath(sourcePath string) string {
	return filepath.Join(i.targetDir, filepath.Base(sourcePath))
}

// BackupPath returns the backup location for the given source binary.
func (i *Installer) BackupPath(sourcePath string) string {
	return i.InstalledPath(sourcePath) + ".bak"
}

// CheckWritePermission verifies the target directory is writable, creating
// it first if necessary. Probing with a temp file catches read-only mounts
// and permission problems before any destructive step.
func (i *Installer) CheckWritePermission() error {
	if err := os.MkdirAll(i.targetDir, 0o755); err != nil {
		return fmt.Errorf("creating target directory %s: %w", i.targetDir, err)
	}

	tmpFile, err := os.CreateTemp(i.targetDir, ".driverup-write-test-*")
	if err != nil {
		return fmt.Errorf("no write permission to %s: %w", i.targetDir, err)
	}

	tmpFile.Close()
	os.Remove(tmpFile.Name())

	return nil
}

// Install copies sourcePath into the target directory. If a file with the
// same name already exists there, it is renamed with a .bak suffix first;
// a stale backup from a previous run is replaced.
// Returns the installed path.
func (i *Installer) Install(sourcePath string) (string, error) {
	if err := i.CheckWritePermission(); err != nil {
		return "", err
	}

	destPath := i.InstalledPath(sourcePath)
	backupPath := i.BackupPath(sourcePath)

	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(backupPath); err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("removing old backup: %w", err)
		}
		if err := os.Rename(destPath, backupPath); err != nil {
			return "", fmt.Errorf("backing up existing driver: %w", err)
		}
	}

	if err := copyFile(sourcePath, destPath); err != nil {
		return "", err
	}

	return destPath, nil
}

// copyFile copies src to dst preserving the source file mode. A plain copy
// rather than a rename: the source sits in the extraction directory, which
// may be on a different filesystem than the target.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode())
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copying driver binary: %w", err)
	}

	return out.Close()
}

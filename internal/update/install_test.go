package update

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
}

func TestInstallerInstall(t *testing.T) {
	t.Parallel()

	t.Run("fresh install without existing driver", func(t *testing.T) {
		t.Parallel()

		sourceDir := t.TempDir()
		targetDir := t.TempDir()
		sourcePath := filepath.Join(sourceDir, "chromedriver")
		writeFile(t, sourcePath, "new driver", 0o755)

		installer := NewInstaller(targetDir)
		installedPath, err := installer.Install(sourcePath)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(targetDir, "chromedriver"), installedPath)
		content, err := os.ReadFile(installedPath)
		require.NoError(t, err)
		assert.Equal(t, "new driver", string(content))

		// No backup when there was nothing to back up.
		_, err = os.Stat(installedPath + ".bak")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("existing driver is backed up", func(t *testing.T) {
		t.Parallel()

		sourceDir := t.TempDir()
		targetDir := t.TempDir()
		sourcePath := filepath.Join(sourceDir, "chromedriver")
		writeFile(t, sourcePath, "new driver", 0o755)
		writeFile(t, filepath.Join(targetDir, "chromedriver"), "old driver", 0o755)

		installer := NewInstaller(targetDir)
		installedPath, err := installer.Install(sourcePath)
		require.NoError(t, err)

		content, err := os.ReadFile(installedPath)
		require.NoError(t, err)
		assert.Equal(t, "new driver", string(content))

		backup, err := os.ReadFile(installedPath + ".bak")
		require.NoError(t, err)
		assert.Equal(t, "old driver", string(backup))
	})

	t.Run("stale backup is replaced", func(t *testing.T) {
		t.Parallel()

		sourceDir := t.TempDir()
		targetDir := t.TempDir()
		sourcePath := filepath.Join(sourceDir, "chromedriver")
		writeFile(t, sourcePath, "newest driver", 0o755)
		writeFile(t, filepath.Join(targetDir, "chromedriver"), "current driver", 0o755)
		writeFile(t, filepath.Join(targetDir, "chromedriver.bak"), "ancient driver", 0o755)

		installer := NewInstaller(targetDir)
		installedPath, err := installer.Install(sourcePath)
		require.NoError(t, err)

		backup, err := os.ReadFile(installedPath + ".bak")
		require.NoError(t, err)
		assert.Equal(t, "current driver", string(backup))
	})

	t.Run("source mode is preserved", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" {
			t.Skip("file modes are not meaningful on windows")
		}

		sourceDir := t.TempDir()
		targetDir := t.TempDir()
		sourcePath := filepath.Join(sourceDir, "chromedriver")
		writeFile(t, sourcePath, "new driver", 0o755)

		installer := NewInstaller(targetDir)
		installedPath, err := installer.Install(sourcePath)
		require.NoError(t, err)

		info, err := os.Stat(installedPath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	})

	t.Run("missing target directory is created", func(t *testing.T) {
		t.Parallel()

		sourceDir := t.TempDir()
		targetDir := filepath.Join(t.TempDir(), "nested", "bin")
		sourcePath := filepath.Join(sourceDir, "chromedriver")
		writeFile(t, sourcePath, "new driver", 0o755)

		installer := NewInstaller(targetDir)
		installedPath, err := installer.Install(sourcePath)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(targetDir, "chromedriver"), installedPath)
	})

	t.Run("missing source fails", func(t *testing.T) {
		t.Parallel()

		installer := NewInstaller(t.TempDir())
		_, err := installer.Install(filepath.Join(t.TempDir(), "does-not-exist"))
		require.Error(t, err)
	})
}

func TestInstallerCheckWritePermission(t *testing.T) {
	t.Parallel()

	t.Run("writable directory", func(t *testing.T) {
		t.Parallel()

		installer := NewInstaller(t.TempDir())
		assert.NoError(t, installer.CheckWritePermission())
	})

	t.Run("read-only directory", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" {
			t.Skip("chmod-based read-only directories do not work on windows")
		}
		if os.Geteuid() == 0 {
			t.Skip("root ignores file permissions")
		}

		dir := t.TempDir()
		require.NoError(t, os.Chmod(dir, 0o555))
		t.Cleanup(func() { os.Chmod(dir, 0o755) })

		installer := NewInstaller(dir)
		assert.Error(t, installer.CheckWritePermission())
	})
}

func TestInstallerPaths(t *testing.T) {
	t.Parallel()

	installer := NewInstaller("/opt/drivers")
	assert.Equal(t, "/opt/drivers", installer.TargetDir())
	assert.Equal(t, filepath.Join("/opt/drivers", "chromedriver.exe"), installer.InstalledPath("/tmp/extracted/chromedriver.exe"))
	assert.Equal(t, filepath.Join("/opt/drivers", "chromedriver.exe")+".bak", installer.BackupPath("/tmp/extracted/chromedriver.exe"))
}

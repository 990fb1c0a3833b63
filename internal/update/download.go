package update

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// downloadTimeout bounds a full archive download. ChromeDriver archives are
// under 10 MB; a minute is generous even on slow links.
const downloadTimeout = 60 * time.Second

// Downloader streams release archives to disk.
type Downloader struct {
	httpClient *http.Client
}

// NewDownloader creates a downloader with the given HTTP client.
func NewDownloader(client *http.Client) *Downloader {
	if client == nil {
		client = &http.Client{Timeout: downloadTimeout}
	}
	return &Downloader{httpClient: client}
}

// ProgressWriter wraps an io.Writer to report download progress.
type ProgressWriter struct {
	Writer   io.Writer
	Total    int64
	Current  int64
	OnUpdate func(current, total int64)
}

// Write implements io.Writer and reports progress.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Current += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Current, pw.Total)
	}
	return n, err
}

// DownloadArchive downloads the zip archive at url into destDir.
// Returns the path to the downloaded file.
func (d *Downloader) DownloadArchive(ctx context.Context, url, destDir string, onProgress func(current, total int64)) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("creating download directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed with status: %d", resp.StatusCode)
	}

	tmpFile, err := os.CreateTemp(destDir, "chromedriver-*.zip")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer tmpFile.Close()

	writer := io.Writer(tmpFile)
	if onProgress != nil {
		writer = &ProgressWriter{
			Writer:   tmpFile,
			Total:    resp.ContentLength,
			OnUpdate: onProgress,
		}
	}

	if _, err := io.Copy(writer, resp.Body); err != nil {
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("writing to temp file: %w", err)
	}

	return tmpFile.Name(), nil
}

// ExtractZip extracts the archive into destDir and returns the path of the
// chromedriver binary found inside (the archives nest it under a
// chromedriver-<platform>/ directory).
func ExtractZip(archivePath, destDir string) (string, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("opening archive: %w", err)
	}
	defer reader.Close()

	var driverPath string

	for _, entry := range reader.File {
		destPath, err := sanitizeArchivePath(destDir, entry.Name)
		if err != nil {
			return "", err
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0o755); err != nil {
				return "", fmt.Errorf("creating directory: %w", err)
			}
			continue
		}

		if err := extractFile(entry, destPath); err != nil {
			return "", err
		}

		if isDriverBinary(entry.Name) {
			driverPath = destPath
		}
	}

	if driverPath == "" {
		return "", fmt.Errorf("chromedriver binary not found in archive %s", filepath.Base(archivePath))
	}

	return driverPath, nil
}

// extractFile writes a single zip entry to destPath with the entry's mode.
func extractFile(entry *zip.File, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("opening archive entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, entry.Mode())
	if err != nil {
		return fmt.Errorf("creating extracted file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(destPath)
		return fmt.Errorf("extracting %s: %w", entry.Name, err)
	}

	return dst.Close()
}

// sanitizeArchivePath joins an archive entry name onto destDir, rejecting
// entries that would escape it (zip slip).
func sanitizeArchivePath(destDir, name string) (string, error) {
	destPath := filepath.Join(destDir, filepath.FromSlash(name))
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry escapes destination: %s", name)
	}
	return destPath, nil
}

// isDriverBinary reports whether an archive entry is the driver executable.
func isDriverBinary(name string) bool {
	base := filepath.Base(filepath.FromSlash(name))
	return base == "chromedriver" || base == "chromedriver.exe"
}

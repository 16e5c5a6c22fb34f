package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// Release archives are a few megabytes; the cap only guards against a
// runaway response body.
const maxDownloadBytes = 256 << 20

// Update stages, reported to the progress callback in order.
const (
	StageCheck    = "check"
	StageDownload = "download"
	StageVerify   = "verify"
	StageExtract  = "extract"
	StageApply    = "apply"
	StageDone     = "done"
)

type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

type UpdateProgress struct {
	Stage   string
	Message string
}

// releaseAsset describes the downloadable archive for one platform.
type releaseAsset struct {
	name   string // file name in the release, e.g. nurture_Linux_x86_64.tar.gz
	binary string // executable name inside the archive
	zipped bool   // zip archive instead of tar.gz
}

// Update replaces the running binary with the release named by
// input.TargetVersion, or with the latest release when the target is empty.
// The archive digest is verified against the release's checksums.txt before
// anything touches disk.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		progress(UpdateProgress{Stage: StageCheck, Message: "Checking for latest version..."})
		result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !result.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = result.LatestVersion
	}

	asset, err := releaseAssetFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	progress(UpdateProgress{Stage: StageDownload, Message: fmt.Sprintf("Downloading %s...", tag)})
	archive, err := c.downloadReleaseFile(ctx, tag, asset.name)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	progress(UpdateProgress{Stage: StageVerify, Message: "Verifying checksum..."})
	manifest, err := c.downloadReleaseFile(ctx, tag, "checksums.txt")
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, err := checksumFor(manifest, asset.name)
	if err != nil {
		return err
	}
	if got := sha256Hex(archive); got != want {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, want, got)
	}

	progress(UpdateProgress{Stage: StageExtract, Message: "Extracting binary..."})
	binary, err := asset.extract(archive)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(UpdateProgress{Stage: StageApply, Message: "Applying update..."})
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := swapBinary(target, binary); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(UpdateProgress{Stage: StageDone, Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

// releaseAssetFor maps a platform to its release archive. Darwin ships a
// single universal binary, so its asset carries no architecture suffix.
func releaseAssetFor(goos, goarch string) (releaseAsset, error) {
	if goos == "darwin" {
		return releaseAsset{name: "nurture_Darwin_all.tar.gz", binary: "nurture"}, nil
	}

	var arch string
	switch goarch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "arm64"
	case "386":
		arch = "i386"
	default:
		return releaseAsset{}, fmt.Errorf("unsupported architecture: %s", goarch)
	}

	switch goos {
	case "linux":
		return releaseAsset{
			name:   fmt.Sprintf("nurture_Linux_%s.tar.gz", arch),
			binary: "nurture",
		}, nil
	case "windows":
		return releaseAsset{
			name:   fmt.Sprintf("nurture_Windows_%s.zip", arch),
			binary: "nurture.exe",
			zipped: true,
		}, nil
	default:
		return releaseAsset{}, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

func (a releaseAsset) extract(archive []byte) ([]byte, error) {
	if a.zipped {
		return binaryFromZip(archive, a.binary)
	}
	return binaryFromTarGz(archive, a.binary)
}

func (c *Checker) downloadReleaseFile(ctx context.Context, tag, name string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes))
}

// checksumFor finds the sha256 digest recorded for name in a
// goreleaser-style checksums.txt ("<hex>  <filename>" per line).
func checksumFor(manifest []byte, name string) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(manifest))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == name {
			return fields[0], nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read checksums: %w", err)
	}
	return "", fmt.Errorf("no checksum found for %s in checksums.txt", name)
}

func sha256Hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

func binaryFromTarGz(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

func binaryFromZip(data []byte, name string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range r.File {
		if filepath.Base(f.Name) == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer func() { _ = rc.Close() }()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// swapBinary writes data to a temp file beside target and renames it into
// place. The rename is atomic on the same filesystem, so the running
// executable is never left truncated, and the original file mode survives.
func swapBinary(target string, data []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(target), ".nurture-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmp, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

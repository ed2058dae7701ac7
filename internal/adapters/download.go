package adapters

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"sdkmanager/internal/ports"
)

// FetcherAdapter downloads archives into the cache directory and
// verifies them against the published sha256 before handing them out.
// A cached archive with a matching digest is reused without touching
// the network.
type FetcherAdapter struct {
	CacheDir string
	Timeout  time.Duration

	// Progress suppresses the progress bar when false, for scripted
	// and test use.
	Progress bool
}

var _ ports.FetcherPort = &FetcherAdapter{}

func NewFetcherAdapter(cacheDir string) *FetcherAdapter {
	return &FetcherAdapter{
		CacheDir: cacheDir,
		Timeout:  30 * time.Minute,
		Progress: true,
	}
}

func (a *FetcherAdapter) EnsureArtifact(ctx context.Context, rawURL string, sha string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid artifact url").
			WithCause(err)
	}
	dest := filepath.Join(a.CacheDir, path.Base(parsed.Path))

	if fileExists(dest) {
		if sha == "" {
			return dest, nil
		}
		computed, err := fileSHA256(dest)
		if err != nil {
			return "", err
		}
		if computed == sha {
			log.Ctx(ctx).Debug().Str("path", dest).Msg("archive cached, digest matches")
			return dest, nil
		}
		log.Ctx(ctx).Warn().Str("path", dest).Msg("cached archive digest mismatch, re-downloading")
	}

	if err := os.MkdirAll(a.CacheDir, 0o700); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create cache directory").
			WithCause(err)
	}
	if err := a.download(ctx, rawURL, dest, sha); err != nil {
		return "", err
	}
	return dest, nil
}

func (a *FetcherAdapter) download(ctx context.Context, rawURL string, dest string, sha string) error {
	log.Ctx(ctx).Info().Str("url", rawURL).Str("dest", dest).Msg("downloading archive")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create download request").
			WithCause(err)
	}
	req.Header.Set("User-Agent", manifestUserAgent)

	client := &http.Client{Timeout: a.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("download request failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("download request rejected").
			WithCause(errStatus(resp.StatusCode, rawURL))
	}

	tmp := dest + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create download file").
			WithCause(err)
	}

	hasher := sha256.New()
	sink := io.MultiWriter(out, hasher)
	if a.Progress {
		bar := progressbar.DefaultBytes(resp.ContentLength, path.Base(dest))
		sink = io.MultiWriter(out, hasher, bar)
	}
	_, copyErr := io.Copy(sink, resp.Body)
	closeErr := out.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(tmp)
		cause := copyErr
		if cause == nil {
			cause = closeErr
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("download interrupted").
			WithCause(cause)
	}

	if sha != "" {
		computed := hex.EncodeToString(hasher.Sum(nil))
		if computed != sha {
			os.Remove(tmp)
			return errbuilder.New().
				WithCode(errbuilder.CodePermissionDenied).
				WithMsg("archive digest mismatch: " + path.Base(dest))
		}
	}

	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to move downloaded archive").
			WithCause(err)
	}
	return nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open archive for hashing").
			WithCause(err)
	}
	defer f.Close()
	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to hash archive").
			WithCause(err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

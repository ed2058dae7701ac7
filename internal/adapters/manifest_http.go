package adapters

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"sdkmanager/internal/ports"
	"sdkmanager/internal/types"
)

// DefaultManifestURLs are the transparency-log mirrors serving the
// signed artifact manifest. One is picked at random per fetch.
var DefaultManifestURLs = []string{
	"https://f-droid.github.io/android-sdk-transparency-log/signed/checksums.json",
	"https://fdroid.gitlab.io/android-sdk-transparency-log/checksums.json",
	"https://raw.githubusercontent.com/f-droid/android-sdk-transparency-log/master/signed/checksums.json",
}

const manifestUserAgent = "F-Droid"
const defaultManifestTimeout = 60 * time.Second
const defaultManifestRetries = 3
const defaultManifestRetryDelay = 200 * time.Millisecond
const maxManifestRetryDelay = 2 * time.Second

// ManifestHTTPAdapter loads the artifact manifest from a signed
// transparency log, caching the raw body plus its detached signature
// and ETag on disk so offline runs keep working.
type ManifestHTTPAdapter struct {
	CacheDir string
	URLs     []string
	Verifier ports.VerifierPort
	Timeout  time.Duration
	Retries  int
}

var _ ports.ManifestSourcePort = &ManifestHTTPAdapter{}

func NewManifestHTTPAdapter(cacheDir string, verifier ports.VerifierPort) *ManifestHTTPAdapter {
	return &ManifestHTTPAdapter{
		CacheDir: cacheDir,
		URLs:     DefaultManifestURLs,
		Verifier: verifier,
		Timeout:  defaultManifestTimeout,
		Retries:  defaultManifestRetries,
	}
}

func (a *ManifestHTTPAdapter) Load(ctx context.Context, refresh bool) (types.Manifest, types.Checksums, error) {
	if err := os.MkdirAll(a.CacheDir, 0o700); err != nil {
		return nil, nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create cache directory").
			WithCause(err)
	}

	cached := filepath.Join(a.CacheDir, "checksums.json")
	signature := cached + ".asc"

	haveCache := fileExists(cached) && fileExists(signature)
	if !haveCache {
		refresh = true
	}

	if refresh {
		if err := a.fetch(ctx, cached, signature); err != nil {
			return nil, nil, err
		}
	}

	if err := a.Verifier.Verify(ctx, cached); err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(cached)
	if err != nil {
		return nil, nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read cached manifest").
			WithCause(err)
	}
	return DecodeChecksums(data)
}

// fetch downloads the manifest signature and body from one mirror.
// A matching ETag leaves the cached body untouched.
func (a *ManifestHTTPAdapter) fetch(ctx context.Context, cached string, signature string) error {
	url := a.URLs[rand.Intn(len(a.URLs))]
	log.Ctx(ctx).Debug().Str("url", url).Msg("fetching manifest")

	if _, err := a.get(ctx, url+".asc", signature, ""); err != nil {
		return err
	}

	etagFile := cached + ".etag"
	etag := ""
	if data, err := os.ReadFile(etagFile); err == nil && fileExists(cached) {
		etag = string(data)
	}

	newEtag, err := a.get(ctx, url, cached, etag)
	switch {
	case err != nil:
		// A stale ETag must not pin us to a dead cache entry.
		os.Remove(etagFile)
		return err
	case newEtag == "":
		os.Remove(etagFile)
	default:
		if writeErr := os.WriteFile(etagFile, []byte(newEtag), 0o644); writeErr != nil {
			log.Ctx(ctx).Warn().Err(writeErr).Msg("failed to store manifest etag")
		}
	}
	return nil
}

// get downloads url into dest, sending If-None-Match when an etag is
// known. It returns the response ETag; 304 leaves dest untouched.
// 5xx and 429 responses are retried with capped backoff.
func (a *ManifestHTTPAdapter) get(ctx context.Context, url string, dest string, etag string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < a.Retries; attempt++ {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		newEtag, retry, err := a.getOnce(ctx, url, dest, etag)
		if err == nil {
			return newEtag, nil
		}
		lastErr = err
		if !retry || attempt == a.Retries-1 {
			return "", err
		}
		time.Sleep(a.retryDelay(attempt))
	}
	return "", lastErr
}

func (a *ManifestHTTPAdapter) getOnce(ctx context.Context, url string, dest string, etag string) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create manifest request").
			WithCause(err)
	}
	req.Header.Set("User-Agent", manifestUserAgent)
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	client := &http.Client{Timeout: a.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", true, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("manifest request failed").
			WithCause(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotModified:
		return etag, false, nil
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		return "", true, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("manifest server error").
			WithCause(errStatus(resp.StatusCode, url))
	case resp.StatusCode != http.StatusOK:
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("manifest request rejected").
			WithCause(errStatus(resp.StatusCode, url))
	}

	tmp := dest + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create manifest file").
			WithCause(err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(tmp)
		return "", true, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("manifest download interrupted").
			WithCause(err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write manifest file").
			WithCause(err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to move manifest file").
			WithCause(err)
	}
	return resp.Header.Get("Etag"), false, nil
}

func (a *ManifestHTTPAdapter) retryDelay(attempt int) time.Duration {
	delay := defaultManifestRetryDelay * time.Duration(1<<attempt)
	if delay > maxManifestRetryDelay {
		delay = maxManifestRetryDelay
	}
	return delay
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func errStatus(code int, url string) error {
	return fmt.Errorf("status=%d url=%s", code, url)
}

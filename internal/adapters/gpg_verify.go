package adapters

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"sdkmanager/internal/ports"
)

// GPGVerifierAdapter checks detached signatures with the system gpgv
// against a pinned keyring. Files that fail verification are removed
// together with their signatures so a poisoned cache cannot be reused.
type GPGVerifierAdapter struct {
	KeyringPath string
}

var _ ports.VerifierPort = GPGVerifierAdapter{}

func NewGPGVerifierAdapter(keyringPath string) GPGVerifierAdapter {
	return GPGVerifierAdapter{KeyringPath: keyringPath}
}

func (a GPGVerifierAdapter) Verify(ctx context.Context, path string) error {
	if !fileExists(a.KeyringPath) {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("keyring not found: " + a.KeyringPath)
	}

	cmd := exec.CommandContext(ctx, "gpgv", "--keyring", a.KeyringPath, path+".asc", path)
	output, err := cmd.CombinedOutput()
	if err == nil {
		log.Ctx(ctx).Debug().Str("path", path).Msg("signature verified")
		return nil
	}

	os.Remove(path)
	os.Remove(path + ".asc")
	return errbuilder.New().
		WithCode(errbuilder.CodePermissionDenied).
		WithMsg("failed to verify " + path + ": " + strings.TrimSpace(string(output))).
		WithCause(err)
}

// NopVerifierAdapter accepts everything. Used when signature checking
// is explicitly disabled.
type NopVerifierAdapter struct{}

var _ ports.VerifierPort = NopVerifierAdapter{}

func (NopVerifierAdapter) Verify(context.Context, string) error { return nil }

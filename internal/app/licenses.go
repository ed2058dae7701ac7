package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// Licenses reports license acceptance state under the SDK root and,
// when requested, records acceptance of the known license hashes.
func (s Service) Licenses(ctx context.Context, req LicensesRequest) (LicensesResult, error) {
	root := strings.TrimSpace(req.Root)
	if root == "" {
		return LicensesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("SDK root is not set; pass --sdk-root or set ANDROID_HOME")
	}

	accepted, err := s.LicenseStore.Accepted(root)
	if err != nil {
		return LicensesResult{}, err
	}
	if accepted {
		return LicensesResult{AlreadyAccepted: true}, nil
	}
	if !req.Accept {
		return LicensesResult{}, nil
	}

	if err := s.LicenseStore.WriteAccepted(root); err != nil {
		return LicensesResult{}, err
	}
	log.Ctx(ctx).Info().Str("root", root).Msg("license acceptance recorded")
	return LicensesResult{Written: true}, nil
}

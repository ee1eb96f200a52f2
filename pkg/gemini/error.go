package gemini

import (
	"errors"

	"github.com/googleapis/gax-go/v2/apierror"
)

// ErrMissingAPIKey is returned when no credential is configured. It is
// fatal for every remote call and distinct from runtime failures.
var ErrMissingAPIKey = errors.New("gemini: API key not configured")

// unwrapErr peels the gax wrapper off SDK errors so callers see the
// underlying API error.
func unwrapErr(err error) error {
	if err == nil {
		return nil
	}
	var ae *apierror.APIError
	if errors.As(err, &ae) {
		if u := ae.Unwrap(); u != nil {
			return u
		}
	}
	return err
}

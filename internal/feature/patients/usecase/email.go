package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

const (
	// emailDomain is the domain appended to every generated address.
	emailDomain = "@example.com"

	// maxEmailProbes bounds the sequential probe loop so a corrupted
	// datastore cannot make it spin forever.
	maxEmailProbes = 1000
)

// slugify lowercases the name and collapses every run of non-alphanumeric
// characters into a single ".", producing the local-part base of the
// generated email. "Nico Robin" becomes "nico.robin".
func slugify(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('.')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// nextAvailableEmail probes base+k+emailDomain for k = 1, 2, ... and returns
// the first candidate not present among users. The smallest free counter wins;
// the datastore's unique index on email is the safety net for concurrent
// creates that derive the same candidate.
func (u *patientUsecase) nextAvailableEmail(ctx context.Context, name string) (string, error) {
	base := slugify(name)
	for k := 1; k <= maxEmailProbes; k++ {
		candidate := fmt.Sprintf("%s%d%s", base, k, emailDomain)
		exists, err := u.patients.EmailExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("probing email %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrEmailProbesExhausted
}

package storage

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	referencePrefix      = "LK"
	maxReferenceAttempts = 5
)

// newReference builds a human-readable booking reference: "LK" followed by
// the booking date (yymmdd) and four random hex characters, e.g. LK250831A3F1.
// The random tail keeps references unique under concurrent inserts; the
// stored unique constraint backstops the rare collision.
func newReference(t time.Time) (string, error) {
	buf := make([]byte, 2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating booking reference: %w", err)
	}
	return referencePrefix + t.Format("060102") + strings.ToUpper(hex.EncodeToString(buf)), nil
}

// generateReference retries newReference until the candidate is not already
// taken, giving up after a bounded number of attempts.
func generateReference(taken func(reference string) (bool, error)) (string, error) {
	for i := 0; i < maxReferenceAttempts; i++ {
		candidate, err := newReference(time.Now())
		if err != nil {
			return "", err
		}
		inUse, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !inUse {
			return candidate, nil
		}
	}
	return "", errors.New("could not generate a unique booking reference")
}

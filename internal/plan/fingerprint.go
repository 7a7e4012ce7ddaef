// Package plan derives the content fingerprint used to detect whether a
// previously saved schedule has drifted. The scheduler's determinism contract
// (identical input, byte-identical output) is what makes the hash meaningful.
package plan

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/crewplanhq/crewplan/internal/contract"
)

// Fingerprint returns the sha256 hex digest of the canonical JSON encoding of
// a plan response, excluding the fingerprint field itself. encoding/json
// emits struct fields in declaration order and sorts map keys, so the
// encoding is stable across runs and architectures.
func Fingerprint(resp *contract.PlanResponse) (string, error) {
	clone := *resp
	clone.Fingerprint = ""
	data, err := json.Marshal(&clone)
	if err != nil {
		return "", fmt.Errorf("encoding plan for fingerprint: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// TTLPlan is how long planned strips stay cached. Keys are content hashes,
// so entries never go stale; the TTL only bounds disk growth.
const TTLPlan = 30 * 24 * time.Hour

// Hash computes the SHA-256 of data as a 64-character hex string.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// HashFile hashes a file's contents. Used to key plans by the exact mesh
// bytes, so editing the model invalidates its cached plans.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// PlanKeyOpts are the planning inputs that determine a plan's identity.
// Layout options (gap, margin, duplicates, style) are not part of the key:
// they do not change the strips, only how strips land on the sheet.
type PlanKeyOpts struct {
	Mode    string  `json:"mode"`
	Tape    float64 `json:"tape"`
	Unit    string  `json:"unit"`
	Beam    int     `json:"beam"`
	Timeout float64 `json:"timeout_sec"`
	Seed    int64   `json:"seed"`
}

// PlanKey builds the cache key for a planning result: the mesh content hash
// plus every option that can change the strips.
func PlanKey(meshHash string, opts PlanKeyOpts) string {
	data, _ := json.Marshal(opts)
	return fmt.Sprintf("plan:%s:%s", meshHash, Hash(data))
}

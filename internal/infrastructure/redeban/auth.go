package redeban

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"time"
)

const authHeader = "Auth-Token"

// authToken builds base64("appCode;ts;sha256hex(appKey+ts)") for the unix
// timestamp of at.
func authToken(appCode, appKey string, at time.Time) string {
	ts := strconv.FormatInt(at.Unix(), 10)
	sum := sha256.Sum256([]byte(appKey + ts))
	raw := appCode + ";" + ts + ";" + hex.EncodeToString(sum[:])
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

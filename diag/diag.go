// Package diag reports contract violations from lutconv at the call
// boundary. The kernel package itself never logs; only callers that sit
// above the hot per-pixel loop do.
package diag

import (
	"hash/fnv"
	"os"

	"github.com/google/uuid"
	b58 "github.com/mr-tron/base58"
	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
)

// Log is the package-wide console logger, configured the same way the rest
// of the codebase's logger package is: caller info on, unix timestamps,
// stderr console writer.
var Log = logger.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// TableSignature returns a short base58-encoded identity for a (pool,
// index) pair so a fleet of devices reporting the same contract violation
// can be correlated in logs without shipping the full tables.
func TableSignature(pool []int8, idx []uint8) string {
	h := fnv.New64a()
	poolBytes := make([]byte, len(pool))
	for i, v := range pool {
		poolBytes[i] = byte(v)
	}
	h.Write(poolBytes)
	h.Write(idx)
	return b58.Encode(h.Sum(nil))
}

// ReportViolation logs a Convolve contract violation with a correlation id
// and table signature so a fleet of devices can be cross-referenced without
// shipping full pool/index payloads.
func ReportViolation(op string, err error, pool []int8, idx []uint8) {
	Log.Error().
		Str("op", op).
		Err(err).
		Str("call_id", uuid.NewString()).
		Str("table_sig", TableSignature(pool, idx)).
		Msg("lutconv contract violation")
}

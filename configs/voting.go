package configs

import "time"

type Voting struct {
	// VoteEncryptionKey is the server-held symmetric key, hex-encoded,
	// 32 bytes once decoded.
	VoteEncryptionKey string        `env:"VOTE_ENCRYPTION_KEY,notEmpty"`
	CastVoteTimeout   time.Duration `env:"CAST_VOTE_TIMEOUT" envDefault:"5s"`
	TallyCacheTTL     time.Duration `env:"TALLY_CACHE_TTL" envDefault:"5m"`
}

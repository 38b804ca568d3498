package domain

import "time"

// Token represents issued authentication token metadata. Tokens are
// self-contained JWTs; nothing is persisted for them.
type Token struct {
	SubjectID string
	Role      string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

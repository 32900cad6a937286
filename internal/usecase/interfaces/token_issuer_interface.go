package interfaces

import "time"

// ITokenIssuer signs admin session tokens.
type ITokenIssuer interface {
	Issue(subject string) (token string, expiresAt time.Time, err error)
}

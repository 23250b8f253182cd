package config

type SessionConfig interface {
	GetSessionDurationMinutes() int
	GetJWKSURL() string
}

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetSessionDurationMinutes() int {
	return 30
}

func (Session) GetJWKSURL() string {
	return GetEnv("STYTCH_JWKS_URL", "")
}

package config

// Config supplies everything the SDK needs to talk to the identity service
// and to recognize its own callback deep links.
type Config interface {
	EnvConfig
	SessionConfig
}

type mainConfig struct {
	EnvVars
	Session
}

func New() Config {
	return mainConfig{}
}

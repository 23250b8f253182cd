package config

import "os"

const (
	publicTokenVar    = "STYTCH_PUBLIC_TOKEN"
	projectIDVar      = "STYTCH_PROJECT_ID"
	apiBaseURLVar     = "STYTCH_API_URL"
	publicBaseURLVar  = "STYTCH_PUBLIC_URL"
	callbackSchemeVar = "STYTCH_CALLBACK_SCHEME"
	callbackHostVar   = "STYTCH_CALLBACK_HOST"
	redisAddrVar      = "STYTCH_REDIS_ADDR"
	appNameVar        = "APP_NAME"
)

type EnvConfig interface {
	GetAppName() string
	GetPublicToken() string
	GetProjectID() string
	GetAPIBaseURL() string
	GetPublicBaseURL() string
	GetCallbackScheme() string
	GetCallbackHost() string
	GetRedisAddr() string
	GetEnv() string
}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Stytch Demo")
}

func (EnvVars) GetPublicToken() string {
	return GetEnv(publicTokenVar, "")
}

func (EnvVars) GetProjectID() string {
	return GetEnv(projectIDVar, "")
}

func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(apiBaseURLVar, "https://api.stytch.com/v1")
}

// GetPublicBaseURL returns the base for redirect-initiating start URLs
// (OAuth/SSO); these are browsed to, not POSTed to.
func (EnvVars) GetPublicBaseURL() string {
	return GetEnv(publicBaseURLVar, "https://api.stytch.com/v1")
}

func (EnvVars) GetCallbackScheme() string {
	return GetEnv(callbackSchemeVar, "stytchdemo")
}

func (EnvVars) GetCallbackHost() string {
	return GetEnv(callbackHostVar, "")
}

// GetRedisAddr is empty by default; set it to persist state in redis
// instead of process memory.
func (EnvVars) GetRedisAddr() string {
	return GetEnv(redisAddrVar, "")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}

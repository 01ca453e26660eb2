package config

import "os"

// Environment variable names for API credentials.
const (
	EnvGoogleAPIKey      = "GOOGLE_API_KEY"
	EnvStravaAccessToken = "STRAVA_ACCESS_TOKEN"
	EnvGitHubToken       = "GITHUB_TOKEN"
)

// Credentials holds the API credentials for the external fetchers.
// Any empty field degrades that fetcher to an empty result without
// making network calls.
type Credentials struct {
	GoogleAPIKey      string
	StravaAccessToken string
	GitHubToken       string
}

// CredentialsFromEnv reads fetcher credentials from the process
// environment. Callers wanting .env support load it first (see
// LoadEnv).
func CredentialsFromEnv() Credentials {
	return Credentials{
		GoogleAPIKey:      os.Getenv(EnvGoogleAPIKey),
		StravaAccessToken: os.Getenv(EnvStravaAccessToken),
		GitHubToken:       os.Getenv(EnvGitHubToken),
	}
}

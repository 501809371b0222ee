package config

import "os"

const defaultDIDApiUrl = "https://api.d-id.com"

type DIDConfig struct {
	ApiUrl string
	ApiKey string
}

// GetDIDConfig never fails: a missing DID_API_KEY is a valid deployment state
// in which talk requests go straight to the fallback path.
func GetDIDConfig() *DIDConfig {
	apiUrl := os.Getenv("DID_API_URL")
	if apiUrl == "" {
		apiUrl = defaultDIDApiUrl
	}

	return &DIDConfig{
		ApiUrl: apiUrl,
		ApiKey: os.Getenv("DID_API_KEY"),
	}
}

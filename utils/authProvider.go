package utils

import (
	"fmt"
	"time"

	"github.com/RyanYahya/NarraPrep/config"

	"github.com/go-resty/resty/v2"
)

// ProviderIdentity is the identity record returned by the external provider
type ProviderIdentity struct {
	Subject string `json:"subject"`
	Email   string `json:"email"`
}

// RegisterIdentity creates the account at the external identity provider and
// returns the token subject assigned to it. Callers must treat any error as
// an upstream failure (502), no retries are attempted.
func RegisterIdentity(email, name, password string) (string, error) {
	client := resty.New().
		SetBaseURL(config.AppConfig.AuthProviderURL).
		SetTimeout(10 * time.Second)

	var identity ProviderIdentity

	resp, err := client.R().
		SetHeader("x-api-key", config.AppConfig.AuthProviderAPIKey).
		SetBody(map[string]string{
			"email":        email,
			"display_name": name,
			"password":     password,
		}).
		SetResult(&identity).
		Post("/accounts")

	if err != nil {
		return "", fmt.Errorf("identity provider unreachable: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("identity provider returned %d: %s", resp.StatusCode(), resp.String())
	}

	if identity.Subject == "" {
		return "", fmt.Errorf("identity provider returned no subject")
	}

	return identity.Subject, nil
}

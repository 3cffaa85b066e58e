package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"elaundry/pkg/utils"
)

// FirebaseClient implements Provider against the hosted identity toolkit
// REST API. Errors come back as {"error":{"message":"EMAIL_EXISTS"}} style
// codes which are mapped onto the package sentinels.
type FirebaseClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewFirebaseClient(config utils.IdentityConfig) *FirebaseClient {
	return &FirebaseClient{
		apiKey:  config.APIKey,
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type firebaseAuthResponse struct {
	LocalID string `json:"localId"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *FirebaseClient) post(ctx context.Context, endpoint string, body any) (*firebaseAuthResponse, int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal %s request: %w", endpoint, err)
	}

	u := fmt.Sprintf("%s/accounts:%s?key=%s", c.baseURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("create %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("identity provider %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	var decoded firebaseAuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode %s response (HTTP %d): %w", endpoint, resp.StatusCode, err)
	}

	return &decoded, resp.StatusCode, nil
}

func (c *FirebaseClient) SignIn(ctx context.Context, email, password string) (string, error) {
	resp, status, err := c.post(ctx, "signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", err
	}

	if status != http.StatusOK || resp.Error != nil {
		switch code(resp) {
		case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED":
			return "", ErrInvalidCredentials
		default:
			return "", fmt.Errorf("identity provider sign-in failed: %s", code(resp))
		}
	}

	return resp.LocalID, nil
}

func (c *FirebaseClient) SignUp(ctx context.Context, email, password string) (string, error) {
	resp, status, err := c.post(ctx, "signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", err
	}

	if status != http.StatusOK || resp.Error != nil {
		if code(resp) == "EMAIL_EXISTS" {
			return "", ErrEmailInUse
		}
		return "", fmt.Errorf("identity provider sign-up failed: %s", code(resp))
	}

	return resp.LocalID, nil
}

func (c *FirebaseClient) DeleteAccount(ctx context.Context, uid string) error {
	resp, status, err := c.post(ctx, "delete", map[string]any{
		"localId": uid,
	})
	if err != nil {
		return err
	}

	if status != http.StatusOK || resp.Error != nil {
		if code(resp) == "USER_NOT_FOUND" {
			return ErrAccountNotFound
		}
		return fmt.Errorf("identity provider delete failed: %s", code(resp))
	}

	return nil
}

func code(resp *firebaseAuthResponse) string {
	if resp.Error == nil {
		return "UNKNOWN"
	}
	return resp.Error.Message
}

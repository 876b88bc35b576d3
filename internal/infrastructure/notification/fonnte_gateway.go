package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"studio_ops/internal/infrastructure/logging"
	"studio_ops/internal/usecase/interfaces"
)

const fonnteAPIURL = "https://api.fonnte.com/send"

var ErrMissingFonnteAPIKey = errors.New("missing FONNTE_API_KEY")

var logg = logging.GetLogger()

// FonnteGateway sends WhatsApp text messages through the Fonnte API.
//
// The provider responds with a JSON body for both accepted and rejected
// sends; that body is returned verbatim so callers can pass it through.

type FonnteGateway struct {
	httpClient *http.Client
	apiURL     string
	token      string
	mockMode   bool
}

var _ interfaces.INotificationGateway = (*FonnteGateway)(nil)

func NewFonnteGateway(token string) (*FonnteGateway, error) {
	if isNotificationMockEnabled() {
		logg.Printf("[notification][gateway] mock mode enabled")
		return &FonnteGateway{mockMode: true}, nil
	}

	if token == "" {
		logg.Printf("[notification][gateway] missing FONNTE_API_KEY")
		return nil, ErrMissingFonnteAPIKey
	}

	return &FonnteGateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiURL:     fonnteAPIURL,
		token:      token,
	}, nil
}

func (g *FonnteGateway) SendText(ctx context.Context, phone, message string) (json.RawMessage, error) {
	if g.mockMode {
		resp := map[string]any{
			"status": true,
			"target": phone,
			"id":     fmt.Sprintf("mock-%d", time.Now().UTC().UnixNano()),
		}
		b, err := json.Marshal(resp)
		if err != nil {
			return nil, err
		}
		logg.Printf("[notification][gateway] mock send success target=%s", phone)
		return b, nil
	}

	form := url.Values{}
	form.Set("target", phone)
	form.Set("message", message)
	form.Set("token", g.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		logg.Printf("[notification][gateway] send failed target=%s err=%v", phone, err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	logg.Printf("[notification][gateway] send done target=%s http_status=%d", phone, resp.StatusCode)

	// Failures are surfaced through the provider body, not translated.
	return body, nil
}

func isNotificationMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFICATION_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

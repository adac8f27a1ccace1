package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"obsydia_retail/internal/config"
	"obsydia_retail/internal/domain/entities"
	"obsydia_retail/internal/infrastructure/logging"
	"obsydia_retail/internal/usecase/interfaces"
)

const DefaultSMTP2GOURL = "https://api.smtp2go.com/v3/email/send"

var (
	ErrMissingSMTP2GOAPIKey = errors.New("missing SMTP2GO_API_KEY")
	ErrMissingFromEmail     = errors.New("missing FROM_EMAIL")
	ErrSMTP2GORequestFailed = errors.New("SMTP2GO request failed")
)

type smtp2goRequest struct {
	APIKey   string   `json:"api_key"`
	To       []string `json:"to"`
	Sender   string   `json:"sender"`
	Subject  string   `json:"subject"`
	HTMLBody string   `json:"html_body"`
	TextBody string   `json:"text_body"`
}

type smtp2goResponse struct {
	RequestID string `json:"request_id"`
	Data      struct {
		Succeeded int    `json:"succeeded"`
		Failed    int    `json:"failed"`
		Error     string `json:"error"`
		ErrorCode string `json:"error_code"`
	} `json:"data"`
	Status string `json:"status"`
}

// SMTP2GOGateway sends notifications through the SMTP2GO HTTP API.
//
// Credentials are checked on every Send, not at construction, so the
// service can start (and reject orders with a server error) without them.
type SMTP2GOGateway struct {
	client   *http.Client
	apiURL   string
	apiKey   string
	sender   string
	mockMode bool
}

var _ interfaces.INotifier = (*SMTP2GOGateway)(nil)

func NewSMTP2GOGateway(cfg config.EmailConfig, client *http.Client) *SMTP2GOGateway {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = DefaultSMTP2GOURL
	}
	if cfg.Mock {
		logging.L().Infof("[email][gateway] mock mode enabled")
	}
	return &SMTP2GOGateway{
		client:   client,
		apiURL:   apiURL,
		apiKey:   cfg.APIKey,
		sender:   cfg.From,
		mockMode: cfg.Mock,
	}
}

func (g *SMTP2GOGateway) Send(ctx context.Context, n entities.Notification) error {
	if g.mockMode {
		logging.L().Infof("[email][gateway] mock send kind=%s to=%s subject=%q", n.Kind, strings.Join(n.To, ","), n.Subject)
		return nil
	}
	if g.apiKey == "" {
		logging.L().Errorf("[email][gateway] missing SMTP2GO_API_KEY")
		return ErrMissingSMTP2GOAPIKey
	}
	if g.sender == "" {
		logging.L().Errorf("[email][gateway] missing FROM_EMAIL")
		return ErrMissingFromEmail
	}
	logging.L().Infof("[email][gateway] send start kind=%s recipients=%d", n.Kind, len(n.To))

	body, err := json.Marshal(smtp2goRequest{
		APIKey:   g.apiKey,
		To:       n.To,
		Sender:   g.sender,
		Subject:  n.Subject,
		HTMLBody: n.HTML,
		TextBody: n.Text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logging.L().Errorf("[email][gateway] request failed kind=%s err=%v", n.Kind, err)
		return fmt.Errorf("%w: %w", ErrSMTP2GORequestFailed, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var out smtp2goResponse
	_ = json.Unmarshal(raw, &out)

	if !accepted(resp.StatusCode, out) {
		logging.L().Errorf("[email][gateway] send rejected kind=%s http_status=%d request_id=%s error=%q", n.Kind, resp.StatusCode, out.RequestID, out.Data.Error)
		return fmt.Errorf("%w: http %d %s", ErrSMTP2GORequestFailed, resp.StatusCode, strings.TrimSpace(out.Data.Error))
	}

	logging.L().Infof("[email][gateway] send success kind=%s request_id=%s succeeded=%d", n.Kind, out.RequestID, out.Data.Succeeded)
	return nil
}

// accepted reports whether every recipient was taken. Partial delivery is a
// failure because the pipeline treats Send as all-or-nothing.
func accepted(status int, out smtp2goResponse) bool {
	if status < 200 || status >= 300 {
		return false
	}
	if out.Data.Failed > 0 {
		return false
	}
	return out.Status == "success" || out.Data.Succeeded > 0
}

// Package call sends voice-call notifications through the CallMeBot
// HTTP API. Calls are fire-and-forget: the service issues one GET per
// notification and reports failures to the caller without retrying.
package call

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"unishare.xyz/home-monitor/pkg/common"
)

const defaultTimeout = 8 * time.Second

type Client struct {
	baseURL    string
	lang       string
	cc         string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New builds a CallMeBot client. An empty base URL is a configuration
// error and must stop startup, so it is reported here rather than on
// first use.
func New(baseURL, lang, cc string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("call api base url not configured, set %s", common.EnvKeyCallMeBotURL)
	}
	if lang == "" {
		lang = "en"
	}
	if cc == "" {
		cc = "missed"
	}
	return &Client{
		baseURL:    baseURL,
		lang:       lang,
		cc:         cc,
		httpClient: &http.Client{Timeout: defaultTimeout},
		// the public API throttles aggressively, stay well below it
		limiter: rate.NewLimiter(rate.Limit(1), 3),
	}, nil
}

// Call requests an outbound voice call reading text to the user.
func (c *Client) Call(ctx context.Context, username, text string) error {
	logger := common.GetLoggerWith(common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlarm))

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	query := url.Values{}
	query.Set("user", "@"+username)
	query.Set("text", text)
	query.Set("lang", c.lang)
	query.Set("cc", c.cc)
	callURL := fmt.Sprintf("%s/start.php?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, callURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("call api returned status %d", resp.StatusCode)
	}

	logger.Info("Call request accepted", zap.String("username", username))
	return nil
}

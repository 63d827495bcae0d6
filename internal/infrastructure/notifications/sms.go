package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"enrols.backend/internal/config"
	"enrols.backend/pkg/logger"
)

// SmsNotifier delivers OTP codes through an HTTP form-post SMS gateway.
// In dry-run mode (the default outside production) nothing leaves the
// process; the code is logged instead.
type SmsNotifier struct {
	apiURL string
	apiKey string
	sender string
	dryRun bool
	client *http.Client
}

type smsGatewayResponse struct {
	Code int `json:"code"`
	Data struct {
		MessageID string `json:"messageId"`
	} `json:"data"`
}

// NewSmsNotifier creates an SMS client from provider configuration
func NewSmsNotifier(cfg config.SMSConfig) *SmsNotifier {
	return &SmsNotifier{
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		sender: cfg.Sender,
		dryRun: cfg.DryRun,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendOtp sends the verification code to a phone number
func (n *SmsNotifier) SendOtp(phoneNumber, code string) error {
	if n.dryRun || n.apiKey == "" {
		logger.Info(context.Background(), "sms dry-run",
			zap.String("to", phoneNumber),
			zap.String("code", code))
		return nil
	}

	form := url.Values{
		"apiKey":    {n.apiKey},
		"recipient": {phoneNumber},
		"text":      {fmt.Sprintf("Your Enrols verification code is %s", code)},
	}
	if n.sender != "" {
		form.Set("from", n.sender)
	}

	resp, err := n.client.PostForm(n.apiURL, form)
	if err != nil {
		return fmt.Errorf("send sms request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read sms response: %w", err)
	}

	var result smsGatewayResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parse sms response: %w", err)
	}
	if result.Code != 0 {
		return fmt.Errorf("sms gateway returned error code %d", result.Code)
	}
	return nil
}

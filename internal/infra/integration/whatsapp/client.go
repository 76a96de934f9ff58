package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/londonlets/api/internal/infra/http/middleware"
)

// Client pushes owner alerts over the WhatsApp Business API. It is an
// optional second notification channel next to email; when the env vars
// are missing every Send fails fast and the fan-out just logs it.
type Client struct {
	accessToken string
	phoneID     string
	ownerNumber string
	baseURL     string
	http        *http.Client
}

func NewClientFromEnv() *Client {
	return &Client{
		accessToken: os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		phoneID:     os.Getenv("WHATSAPP_PHONE_ID"),
		ownerNumber: os.Getenv("WHATSAPP_OWNER_NUMBER"),
		baseURL:     "https://graph.facebook.com/v18.0",
		http:        &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Send(title, content string) error {
	if c.accessToken == "" || c.phoneID == "" || c.ownerNumber == "" {
		return fmt.Errorf("whatsapp not configured")
	}

	payload := sendMessageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               c.ownerNumber,
		Type:             "text",
		Text:             messageText{Body: title + "\n\n" + content},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal whatsapp message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneID)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		middleware.RecordIntegrationError("whatsapp")
		return fmt.Errorf("whatsapp request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		middleware.RecordIntegrationError("whatsapp")
		return fmt.Errorf("whatsapp rejected message (status %d): %s", resp.StatusCode, string(respBody))
	}

	var response sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("decode whatsapp response: %w", err)
	}

	return nil
}

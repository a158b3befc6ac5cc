package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const metaGraphURL = "https://graph.facebook.com/v20.0"

// MetaClient клиент официального WhatsApp Cloud API
type MetaClient struct {
	baseURL       string
	phoneNumberID string
	accessToken   string
	httpClient    *http.Client
	log           Logger
}

// NewMetaClient создает новый экземпляр клиента WhatsApp Cloud API
func NewMetaClient(phoneNumberID, accessToken string, timeout time.Duration, log Logger) *MetaClient {
	return &MetaClient{
		baseURL:       metaGraphURL,
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type metaSendRequest struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             metaTextBody `json:"text"`
}

type metaTextBody struct {
	Body string `json:"body"`
}

type metaSendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// SendText отправляет текстовое сообщение через WhatsApp Cloud API
func (c *MetaClient) SendText(ctx context.Context, msg Message) (*Result, error) {
	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)

	payload, err := json.Marshal(metaSendRequest{
		MessagingProduct: "whatsapp",
		To:               msg.To,
		Type:             "text",
		Text:             metaTextBody{Body: msg.Body},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.Warn("SendText: cloud api returned status=%d body=%s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status code %d: %s", ErrSendFailed, resp.StatusCode, string(body))
	}

	var out metaSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if len(out.Messages) == 0 {
		return nil, fmt.Errorf("%w: empty messages in response", ErrInvalidResponse)
	}

	return &Result{ExternalID: out.Messages[0].ID}, nil
}

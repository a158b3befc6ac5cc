package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// EvolutionClient клиент Evolution API (self-hosted WhatsApp шлюз)
type EvolutionClient struct {
	baseURL    string
	instance   string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewEvolutionClient создает новый экземпляр клиента Evolution API
func NewEvolutionClient(baseURL, instance, apiKey string, timeout time.Duration, log Logger) *EvolutionClient {
	return &EvolutionClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		instance: instance,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type evolutionSendRequest struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

type evolutionSendResponse struct {
	Key struct {
		ID string `json:"id"`
	} `json:"key"`
	Status string `json:"status"`
}

// SendText отправляет текстовое сообщение через Evolution API.
// Evolution принимает номер без префикса "+"
func (c *EvolutionClient) SendText(ctx context.Context, msg Message) (*Result, error) {
	url := fmt.Sprintf("%s/message/sendText/%s", c.baseURL, c.instance)

	payload, err := json.Marshal(evolutionSendRequest{
		Number: strings.TrimPrefix(msg.To, "+"),
		Text:   msg.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		c.log.Warn("SendText: evolution returned status=%d body=%s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status code %d: %s", ErrSendFailed, resp.StatusCode, string(body))
	}

	var out evolutionSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &Result{ExternalID: out.Key.ID}, nil
}

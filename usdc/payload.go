package usdc

import (
	"encoding/json"
)

// WebhookPayload mirrors the part of the Alchemy custom webhook body we
// consume. The nesting path is a versioned contract owned by the provider,
// so every level is optional: anything missing simply yields zero logs.
type WebhookPayload struct {
	WebhookID string `json:"webhookId"`
	Event     struct {
		Data struct {
			Block struct {
				Logs []Log `json:"logs"`
			} `json:"block"`
		} `json:"data"`
	} `json:"event"`
}

// Log is one raw log record as delivered by the provider.
type Log struct {
	Account struct {
		Address string `json:"address"`
	} `json:"account"`
	Topics []string `json:"topics"`
	Data   string   `json:"data"`
}

func ParsePayload(body []byte) (*WebhookPayload, error) {
	payload := &WebhookPayload{}
	err := json.Unmarshal(body, payload)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (payload *WebhookPayload) Logs() []Log {
	return payload.Event.Data.Block.Logs
}

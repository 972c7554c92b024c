package messaging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type gateway struct {
	endpoint string
	key      string
}

// NewGateway posts messages to an external WhatsApp-style gateway.
func NewGateway(endpoint, key string) Channel {
	return &gateway{endpoint: endpoint, key: key}
}

func (g *gateway) Send(toPhone, text string) error {
	body, _ := json.Marshal(map[string]string{"to": toPhone, "text": text})
	httpc := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequest("POST", strings.TrimRight(g.endpoint, "/")+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("gateway responded %d", resp.StatusCode)
	}
	return nil
}

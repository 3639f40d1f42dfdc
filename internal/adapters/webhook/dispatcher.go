package webhook

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "time"

    "dealdesk/internal/config"
)

// Dispatcher fires automation webhooks. It is fire-and-forget past the HTTP
// handshake: the response body is drained and discarded, and nothing here
// retries — the queue row just records how the handshake went.
type Dispatcher struct {
    baseURL string
    catalog *config.Catalog
    client  *http.Client
}

func New(baseURL string, catalog *config.Catalog) *Dispatcher {
    return &Dispatcher{
        baseURL: baseURL,
        catalog: catalog,
        client:  &http.Client{Timeout: 15 * time.Second},
    }
}

type payload struct {
    AutomationKey string    `json:"automation_key"`
    LeadID        string    `json:"lead_id"`
    RequestedAt   time.Time `json:"requested_at"`
}

func (d *Dispatcher) Dispatch(ctx context.Context, automationKey, leadID string) error {
    auto, ok := d.catalog.Lookup(automationKey)
    if !ok {
        return fmt.Errorf("automation %q not in catalog", automationKey)
    }
    body, err := json.Marshal(payload{AutomationKey: automationKey, LeadID: leadID, RequestedAt: time.Now().UTC()})
    if err != nil {
        return err
    }
    req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+auto.WebhookPath, bytes.NewReader(body))
    if err != nil {
        return err
    }
    req.Header.Set("Content-Type", "application/json")

    resp, err := d.client.Do(req)
    if err != nil {
        return fmt.Errorf("dispatch %s: %w", automationKey, err)
    }
    defer resp.Body.Close()
    _, _ = io.Copy(io.Discard, resp.Body)

    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        return fmt.Errorf("dispatch %s: webhook returned %d", automationKey, resp.StatusCode)
    }
    return nil
}

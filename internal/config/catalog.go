package config

import (
    "fmt"
    "os"

    "gopkg.in/yaml.v3"

    "dealdesk/internal/domain"
)

// Automation describes one outbound workflow: its governance key, the
// category whose gate also applies, and where its webhook lives.
type Automation struct {
    Key         string          `yaml:"key"`
    Category    domain.Category `yaml:"category"`
    WebhookPath string          `yaml:"webhook_path"`
    Description string          `yaml:"description"`
}

// Catalog is the set of known automations. Gate rows are seeded from it at
// startup; a key absent from the catalog is a configuration-drift error at
// resolution time, never a silent allow or deny.
type Catalog struct {
    Automations []Automation `yaml:"automations"`

    byKey map[string]Automation
}

// DefaultCatalog covers the workflows the dashboard ships with. A YAML file
// replaces it wholesale when AUTOMATION_CATALOG is set.
func DefaultCatalog() *Catalog {
    c := &Catalog{Automations: []Automation{
        {Key: "lead_intake", Category: domain.CategoryIntake, WebhookPath: "/hooks/lead-intake", Description: "normalize and file a freshly scraped lead"},
        {Key: "sam_outreach", Category: domain.CategoryOutreach, WebhookPath: "/hooks/sam-outreach", Description: "first-touch SMS sequence"},
        {Key: "followup_sms", Category: domain.CategoryOutreach, WebhookPath: "/hooks/followup-sms", Description: "scheduled follow-up SMS"},
        {Key: "agreement_send", Category: domain.CategoryContracts, WebhookPath: "/hooks/agreement-send", Description: "send the fee agreement for signature"},
        {Key: "contract_send", Category: domain.CategoryContracts, WebhookPath: "/hooks/contract-send", Description: "send the purchase contract"},
        {Key: "payout_initiate", Category: domain.CategoryPayments, WebhookPath: "/hooks/payout-initiate", Description: "initiate the party split payout"},
    }}
    c.index()
    return c
}

// LoadCatalog reads a catalog from a YAML file, falling back to the default
// set when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
    if path == "" {
        return DefaultCatalog(), nil
    }
    data, err := os.ReadFile(path)
    if err != nil {
        return nil, err
    }
    var c Catalog
    if err := yaml.Unmarshal(data, &c); err != nil {
        return nil, fmt.Errorf("parse catalog %s: %w", path, err)
    }
    if err := c.validate(); err != nil {
        return nil, fmt.Errorf("catalog %s: %w", path, err)
    }
    c.index()
    return &c, nil
}

func (c *Catalog) validate() error {
    if len(c.Automations) == 0 {
        return fmt.Errorf("no automations defined")
    }
    seen := map[string]bool{}
    for _, a := range c.Automations {
        if a.Key == "" {
            return fmt.Errorf("automation with empty key")
        }
        if seen[a.Key] {
            return fmt.Errorf("duplicate automation key %q", a.Key)
        }
        seen[a.Key] = true
        if !domain.ValidCategory(a.Category) {
            return fmt.Errorf("automation %q: unknown category %q", a.Key, a.Category)
        }
    }
    return nil
}

func (c *Catalog) index() {
    c.byKey = make(map[string]Automation, len(c.Automations))
    for _, a := range c.Automations {
        c.byKey[a.Key] = a
    }
}

// Lookup returns the automation for key.
func (c *Catalog) Lookup(key string) (Automation, bool) {
    a, ok := c.byKey[key]
    return a, ok
}

// Categories returns the distinct categories in catalog order.
func (c *Catalog) Categories() []domain.Category {
    seen := map[domain.Category]bool{}
    var out []domain.Category
    for _, a := range c.Automations {
        if !seen[a.Category] {
            seen[a.Category] = true
            out = append(out, a.Category)
        }
    }
    return out
}

package entities

// Client is an identity document. Only identity and contact fields are
// typed; any additional attributes supplied by callers ride along in Extra.

type Client struct {
	ID        ID             `json:"_id"`
	Name      string         `json:"name,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	Email     string         `json:"email,omitempty"`
	Address   string         `json:"address,omitempty"`
	CreatedAt string         `json:"createdAt,omitempty"`
	Extra     map[string]any `json:"-"`
}

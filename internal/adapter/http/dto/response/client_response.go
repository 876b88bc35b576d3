package response

import (
	"studio_ops/internal/domain/entities"
)

type ClientResponse struct {
	ID        string `json:"_id"`
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`

	extra map[string]any
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		extra:     c.Extra,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}

type clientResponseAlias ClientResponse

func (r ClientResponse) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(clientResponseAlias(r), r.extra)
}

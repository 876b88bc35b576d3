package request

import (
	"encoding/json"

	"studio_ops/internal/domain/entities"
)

// ClientRequest is the create/update payload for clients. Unknown attributes
// are captured into Extra; Fields keeps every supplied attribute for partial
// merge updates.

type ClientRequest struct {
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt string

	Extra  map[string]any
	Fields map[string]any
}

type clientRequestBody struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt"`
}

func (r *ClientRequest) UnmarshalJSON(b []byte) error {
	var body clientRequestBody
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}
	var all map[string]any
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	delete(all, "_id")

	r.Name = body.Name
	r.Phone = body.Phone
	r.Email = body.Email
	r.Address = body.Address
	r.CreatedAt = body.CreatedAt
	r.Fields = all
	r.Extra = extraOf(all, "name", "phone", "email", "address", "createdAt")
	return nil
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
		CreatedAt: r.CreatedAt,
		Extra:     r.Extra,
	}
}

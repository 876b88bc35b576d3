package response

import (
	"encoding/json"

	"studio_ops/internal/domain/entities"
)

// CreatedResponse is the body of every successful create, mirroring the
// store's historic shape: stringified id plus a human message.

type CreatedResponse struct {
	ID      string `json:"_id"`
	Message string `json:"message"`
}

func Created(id entities.ID, message string) CreatedResponse {
	return CreatedResponse{ID: id.String(), Message: message}
}

// MessageResponse carries a bare confirmation message.

type MessageResponse struct {
	Message string `json:"message"`
}

// marshalWithExtra serializes v and overlays schema-less extra attributes.
// Typed attributes always win over an extra of the same name.
func marshalWithExtra(v any, extra map[string]any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return b, nil
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, taken := m[k]; taken {
			continue
		}
		m[k] = val
	}
	return json.Marshal(m)
}

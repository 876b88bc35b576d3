package request

import (
	"encoding/json"

	"studio_ops/internal/domain/entities"
)

// FeedbackRequest is the create/update payload for feedbacks.

type FeedbackRequest struct {
	ClientID  string
	InvoiceID string
	Rating    *float64
	Comment   string

	Extra  map[string]any
	Fields map[string]any
}

type feedbackRequestBody struct {
	ClientID  string   `json:"clientId"`
	InvoiceID string   `json:"invoiceId"`
	Rating    *float64 `json:"rating"`
	Comment   string   `json:"comment"`
}

func (r *FeedbackRequest) UnmarshalJSON(b []byte) error {
	var body feedbackRequestBody
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}
	var all map[string]any
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	delete(all, "_id")

	r.ClientID = body.ClientID
	r.InvoiceID = body.InvoiceID
	r.Rating = body.Rating
	r.Comment = body.Comment
	r.Fields = all
	r.Extra = extraOf(all, "clientId", "invoiceId", "rating", "comment")
	return nil
}

func (r FeedbackRequest) ToEntity() entities.Feedback {
	return entities.Feedback{
		ClientID:  r.ClientID,
		InvoiceID: r.InvoiceID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Extra:     r.Extra,
	}
}

package response

import (
	"studio_ops/internal/domain/entities"
)

type FeedbackResponse struct {
	ID        string   `json:"_id"`
	ClientID  string   `json:"clientId,omitempty"`
	InvoiceID string   `json:"invoiceId,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	Comment   string   `json:"comment,omitempty"`

	extra map[string]any
}

func FromFeedback(f entities.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        f.ID.String(),
		ClientID:  f.ClientID,
		InvoiceID: f.InvoiceID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		extra:     f.Extra,
	}
}

func FromFeedbacks(feedbacks []entities.Feedback) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		out = append(out, FromFeedback(f))
	}
	return out
}

type feedbackResponseAlias FeedbackResponse

func (r FeedbackResponse) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(feedbackResponseAlias(r), r.extra)
}

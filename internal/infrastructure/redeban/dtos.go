package redeban

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
)

type AddCardRequest struct {
	SessionID string  `json:"session_id"`
	User      UserDTO `json:"user"`
	Card      CardDTO `json:"card"`
}

type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type CardDTO struct {
	Number      string `json:"number"`
	HolderName  string `json:"holder_name"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVC         string `json:"cvc"`
	Type        string `json:"type,omitempty"`
}

type AddCardResponse struct {
	Card *CardResult `json:"card"`
}

type CardResult struct {
	Bin                  string  `json:"bin"`
	Status               string  `json:"status"`
	Token                string  `json:"token"`
	ExpiryMonth          FlexInt `json:"expiry_month"`
	ExpiryYear           FlexInt `json:"expiry_year"`
	TransactionReference string  `json:"transaction_reference"`
	Type                 string  `json:"type"`
	Number               string  `json:"number"`
	CardID               string  `json:"card_id"`
	Country              string  `json:"country"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Type        string `json:"type"`
	Help        string `json:"help"`
	Description string `json:"description"`
}

// FlexInt decodes a JSON number or a numeric string. null and "" decode to 0.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		data = []byte(s)
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", data, err)
	}
	*f = FlexInt(n)
	return nil
}

func newAddCardRequest(sessionID, userID, email string, card *domain.Card) AddCardRequest {
	return AddCardRequest{
		SessionID: sessionID,
		User: UserDTO{
			ID:    userID,
			Email: email,
		},
		Card: CardDTO{
			Number:      card.Number,
			HolderName:  card.HolderName,
			ExpiryMonth: card.ExpiryMonth,
			ExpiryYear:  card.ExpiryYear,
			CVC:         card.CVC,
			Type:        card.Type(),
		},
	}
}

// toDomain maps the processor card. The processor reports the masked
// number; only its last four digits are kept.
func (r *CardResult) toDomain() *domain.TokenizedCard {
	last4 := r.Number
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}

	return &domain.TokenizedCard{
		Last4:                last4,
		Type:                 r.Type,
		ExpiryMonth:          int(r.ExpiryMonth),
		ExpiryYear:           int(r.ExpiryYear),
		Status:               r.Status,
		Token:                r.Token,
		TransactionReference: r.TransactionReference,
		CardID:               r.CardID,
		Country:              r.Country,
	}
}

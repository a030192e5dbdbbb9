package domain

// TokenizedCard is what the processor returns for a stored card.
// Absent fields keep their zero value.
type TokenizedCard struct {
	Last4                string
	Type                 string
	ExpiryMonth          int
	ExpiryYear           int
	Status               string
	Token                string
	TransactionReference string
	CardID               string
	Country              string
}

// Envelope renders the card with the channel's field names.
func (c *TokenizedCard) Envelope() map[string]any {
	return map[string]any{
		"last4":                c.Last4,
		"type":                 c.Type,
		"expiryMonth":          c.ExpiryMonth,
		"expiryYear":           c.ExpiryYear,
		"status":               c.Status,
		"token":                c.Token,
		"transactionReference": c.TransactionReference,
		"cardId":               c.CardID,
		"country":              c.Country,
	}
}

// Environment selects the processor mode and credentials.
type Environment struct {
	TestMode      bool
	ClientAppCode string
	ClientAppKey  string
}

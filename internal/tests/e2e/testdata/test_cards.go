package testdata

// Test cards understood by the fake processor
type TestCard struct {
	CardNumber  string
	CVC         string
	ExpiryMonth int
	ExpiryYear  int
	Description string
}

var (
	ValidCard = TestCard{
		CardNumber:  "4111111111111111",
		CVC:         "123",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		Description: "Happy path card",
	}

	DeclinedCard = TestCard{
		CardNumber:  "5555555555554444",
		CVC:         "789",
		ExpiryMonth: 9,
		ExpiryYear:  2030,
		Description: "Processor declines the card",
	}

	NoDataCard = TestCard{
		CardNumber:  "378282246310005",
		CVC:         "1234",
		ExpiryMonth: 6,
		ExpiryYear:  2031,
		Description: "Processor answers 200 without card data",
	}

	ExpiredCard = TestCard{
		CardNumber:  "5105105105105100",
		CVC:         "321",
		ExpiryMonth: 3,
		ExpiryYear:  2020,
		Description: "Expired card",
	}
)

package cowswap

type OrderKind string

const (
	OrderKindSell OrderKind = "sell"
	OrderKindBuy  OrderKind = "buy"
)

type SigningScheme string

const SigningSchemePresign SigningScheme = "presign"

// QuoteRequest is sent to the order-book quoting endpoint. Constructed once
// per request and never mutated afterwards.
type QuoteRequest struct {
	SellToken           string        `json:"sellToken"`
	BuyToken            string        `json:"buyToken"`
	Receiver            string        `json:"receiver"`
	From                string        `json:"from"`
	SellAmountBeforeFee string        `json:"sellAmountBeforeFee"`
	Kind                OrderKind     `json:"kind"`
	SigningScheme       SigningScheme `json:"signingScheme"`
}

// OrderParameters is the quote body returned by the order book. SellAmount
// and BuyAmount are mutated in place by the documented fee-inclusion and
// slippage adjustments; both are one-time, request-scoped transformations.
type OrderParameters struct {
	SellToken         string        `json:"sellToken"`
	BuyToken          string        `json:"buyToken"`
	Receiver          string        `json:"receiver"`
	SellAmount        string        `json:"sellAmount"`
	BuyAmount         string        `json:"buyAmount"`
	ValidTo           uint32        `json:"validTo"`
	AppData           string        `json:"appData"`
	FeeAmount         string        `json:"feeAmount"`
	Kind              OrderKind     `json:"kind"`
	PartiallyFillable bool          `json:"partiallyFillable"`
	SellTokenBalance  string        `json:"sellTokenBalance"`
	BuyTokenBalance   string        `json:"buyTokenBalance"`
	SigningScheme     SigningScheme `json:"signingScheme"`
}

type QuoteResponse struct {
	Quote      OrderParameters `json:"quote"`
	From       string          `json:"from"`
	Expiration string          `json:"expiration"`
	ID         int64           `json:"id"`
	Verified   bool            `json:"verified"`
}

// OrderCreation is the submittable order posted back to the order book.
type OrderCreation struct {
	OrderParameters
	Signature string `json:"signature"`
	QuoteID   int64  `json:"quoteId"`
	From      string `json:"from"`
}

package cowswap

// BuildOrder turns an (already fee- and slippage-adjusted) quote response
// into the submittable order. Fixed policy overrides: empty signature,
// presign signing scheme, zero fee. The quote id and quoting account are
// carried forward; the order book rejects presign orders without a from.
func BuildOrder(response QuoteResponse) OrderCreation {
	params := response.Quote
	params.FeeAmount = "0"
	params.SigningScheme = SigningSchemePresign

	return OrderCreation{
		OrderParameters: params,
		Signature:       "0x",
		QuoteID:         response.ID,
		From:            response.From,
	}
}

package wallet

// MetaTransaction is one unsigned call for the wallet: target contract,
// native value (0x-hex), and ABI call data (0x-hex). Immutable once built.
type MetaTransaction struct {
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

type TransactionParams struct {
	From  string `json:"from,omitempty"`
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

// SignRequest is the final artifact returned to the caller. It is either
// fully built or the request fails; no partial construction.
type SignRequest struct {
	Method  string              `json:"method"`
	ChainID int64               `json:"chainId"`
	Params  []TransactionParams `json:"params"`
}

const signRequestMethod = "eth_sendTransaction"

func SignRequestFor(chainID int64, from string, transactions []MetaTransaction) SignRequest {
	params := make([]TransactionParams, 0, len(transactions))
	for _, transaction := range transactions {
		params = append(params, TransactionParams{
			From:  from,
			To:    transaction.To,
			Value: transaction.Value,
			Data:  transaction.Data,
		})
	}

	return SignRequest{
		Method:  signRequestMethod,
		ChainID: chainID,
		Params:  params,
	}
}

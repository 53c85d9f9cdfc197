package cowswap

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"

	apperrors "signforge/internal/shared_kernel/errors"
)

const appDataVersion = "1.3.0"

type PartnerFee struct {
	Bps       int64  `json:"bps"`
	Recipient string `json:"recipient"`
}

// Struct fields are declared in alphabetical order on purpose: the document
// is content-addressed, so serialization must be deterministic and stable
// key ordering is part of the identifier space. Any field-order or
// whitespace change alters every hash.
type appDataReferrer struct {
	Address string `json:"address"`
}

type appDataMetadata struct {
	PartnerFee *PartnerFee     `json:"partnerFee,omitempty"`
	Referrer   appDataReferrer `json:"referrer"`
}

type appDataDocument struct {
	AppCode  string          `json:"appCode"`
	Metadata appDataMetadata `json:"metadata"`
	Version  string          `json:"version"`
}

// AppData is an order metadata document plus its keccak256 content hash.
type AppData struct {
	Hash string
	Doc  string
}

func BuildAppData(appCode, referrerAddress string, fee *PartnerFee) (AppData, *apperrors.AppError) {
	doc, err := json.Marshal(appDataDocument{
		AppCode: appCode,
		Metadata: appDataMetadata{
			PartnerFee: fee,
			Referrer:   appDataReferrer{Address: referrerAddress},
		},
		Version: appDataVersion,
	})
	if err != nil {
		return AppData{}, apperrors.NewInternal(
			"app_data_serialization_failed",
			"failed to serialize app data document",
			map[string]any{"error": err.Error()},
		)
	}

	hash := sha3.NewLegacyKeccak256()
	_, _ = hash.Write(doc)

	return AppData{
		Hash: hexutil.Encode(hash.Sum(nil)),
		Doc:  string(doc),
	}, nil
}

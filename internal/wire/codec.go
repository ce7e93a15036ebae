package wire

import "github.com/voltride/rental-core/internal/core/domain"

// Codec pairs the JSON encoder and decoder for one entity type.
type Codec[E domain.Entity[E]] struct {
	Name   string
	Encode func(E) ([]byte, error)
	Decode func([]byte) (Decoded[E], error)
}

var (
	AccountCodec    = Codec[domain.Account]{Name: "account", Encode: EncodeAccount, Decode: DecodeAccount}
	RenterCodec     = Codec[domain.Renter]{Name: "renter", Encode: EncodeRenter, Decode: DecodeRenter}
	MembershipCodec = Codec[domain.Membership]{Name: "membership", Encode: EncodeMembership, Decode: DecodeMembership}
)

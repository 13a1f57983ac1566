package usdc

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stablepay/stablepay.go/common"
)

// SkipReason classifies logs the decoder refuses without treating them as
// failures. The zero value means the log decoded fine.
type SkipReason string

const (
	SkipNone          SkipReason = ""
	SkipWrongContract SkipReason = "wrong_contract"
	SkipMalformedLog  SkipReason = "malformed_log"
)

// TransferEvent is a decoded ERC-20 Transfer log. Addresses are lowercase
// and the amount is already scaled down to whole tokens.
type TransferEvent struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Token  string          `json:"token"`
	Amount decimal.Decimal `json:"amount"`
}

// Decoder turns raw logs into TransferEvents for one token contract.
type Decoder struct {
	tokenContract string
}

func NewDecoder(tokenContract string) *Decoder {
	return &Decoder{tokenContract: strings.ToLower(tokenContract)}
}

// Decode converts one raw log into a TransferEvent. Logs emitted by other
// contracts and logs without the two indexed address topics are skipped,
// never errored: the webhook stream carries plenty of events that are
// simply not for us.
func (decoder *Decoder) Decode(log Log) (TransferEvent, SkipReason) {
	contract := strings.ToLower(log.Account.Address)
	if contract != decoder.tokenContract {
		return TransferEvent{}, SkipWrongContract
	}

	// Transfer(address,address,uint256): event selector plus the two
	// indexed address parameters
	if len(log.Topics) < 3 {
		return TransferEvent{}, SkipMalformedLog
	}

	raw, ok := new(big.Int).SetString(strings.TrimPrefix(log.Data, "0x"), 16)
	if !ok {
		return TransferEvent{}, SkipMalformedLog
	}

	return TransferEvent{
		From:  DecodeTopicAddress(log.Topics[1]),
		To:    DecodeTopicAddress(log.Topics[2]),
		Token: contract,
		// constructing the decimal with a negative exponent keeps the
		// conversion exact, there is no float anywhere in this path
		Amount: decimal.NewFromBigInt(raw, -common.TokenDecimals),
	}, SkipNone
}

// DecodeTopicAddress extracts an address from a padded 32-byte topic word.
// The address is the low-order 20 bytes, i.e. the trailing 40 hex chars.
func DecodeTopicAddress(topic string) string {
	topic = strings.ToLower(strings.TrimPrefix(topic, "0x"))
	if len(topic) > 40 {
		topic = topic[len(topic)-40:]
	}
	return "0x" + topic
}

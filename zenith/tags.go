package zenith

import (
	"fmt"

	"github.com/hugr-lab/zenith-scan/formula"
)

// Boolean tuple node types.
const (
	AndTupleNodeType                = "and"
	OrTupleNodeType                 = "or"
	NotTupleNodeType                = "not"
	XorTupleNodeType                = "xor"
	AllTupleNodeType                = "all"
	NoneTupleNodeType               = "none"
	EqualTupleNodeType              = "="
	GreaterThanTupleNodeType        = ">"
	GreaterThanOrEqualTupleNodeType = "ge"
	LessThanTupleNodeType           = "<"
	LessThanOrEqualTupleNodeType    = "le"
)

// Numeric tuple node types.
const (
	AddTupleNodeType = "add"
	SubTupleNodeType = "sub"
	MulTupleNodeType = "mul"
	DivTupleNodeType = "div"
	ModTupleNodeType = "mod"
	NegTupleNodeType = "neg"
	PosTupleNodeType = "pos"
	AbsTupleNodeType = "abs"
	IfTupleNodeType  = "if"
)

// Named parameter keys.
const (
	MinParameterName        = "Min"
	MaxParameterName        = "Max"
	AtParameterName         = "At"
	AsParameterName         = "As"
	IgnoreCaseParameterName = "IgnoreCase"
)

// maxFieldParameterCount is the largest number of parameters any field tuple accepts.
const maxFieldParameterCount = 4

// EncodeFieldID returns the tuple tag of a field.
func EncodeFieldID(id formula.FieldID) string {
	switch id {
	case formula.FieldAuctionPrice:
		return "auctionPrice"
	case formula.FieldAuctionQuantity:
		return "auctionQuantity"
	case formula.FieldAuctionRemainder:
		return "auctionRemainder"
	case formula.FieldBestAskCount:
		return "bestAskCount"
	case formula.FieldBestAskPrice:
		return "bestAskPrice"
	case formula.FieldBestAskQuantity:
		return "bestAskQuantity"
	case formula.FieldBestBidCount:
		return "bestBidCount"
	case formula.FieldBestBidPrice:
		return "bestBidPrice"
	case formula.FieldBestBidQuantity:
		return "bestBidQuantity"
	case formula.FieldClosePrice:
		return "closePrice"
	case formula.FieldContractSize:
		return "contractSize"
	case formula.FieldHighPrice:
		return "highPrice"
	case formula.FieldLastPrice:
		return "lastPrice"
	case formula.FieldLotSize:
		return "lotSize"
	case formula.FieldLowPrice:
		return "lowPrice"
	case formula.FieldOpenInterest:
		return "openInterest"
	case formula.FieldOpenPrice:
		return "openPrice"
	case formula.FieldPreviousClose:
		return "previousClose"
	case formula.FieldShareIssue:
		return "shareIssue"
	case formula.FieldStrikePrice:
		return "strikePrice"
	case formula.FieldTrades:
		return "trades"
	case formula.FieldValueTraded:
		return "valueTraded"
	case formula.FieldVolume:
		return "volume"
	case formula.FieldVwap:
		return "vwap"
	case formula.FieldExpiryDate:
		return "expiryDate"
	case formula.FieldIsIndex:
		return "isIndex"
	case formula.FieldCode:
		return "code"
	case formula.FieldName:
		return "name"
	case formula.FieldCallOrPut:
		return "callOrPut"
	case formula.FieldCfi:
		return "cfi"
	case formula.FieldClass:
		return "class"
	case formula.FieldExchange:
		return "exchange"
	case formula.FieldMarket:
		return "market"
	case formula.FieldCurrency:
		return "currency"
	case formula.FieldExerciseType:
		return "exerciseType"
	case formula.FieldQuotationBasis:
		return "quotationBasis"
	case formula.FieldState:
		return "state"
	case formula.FieldStatusNote:
		return "statusNote"
	case formula.FieldCategory:
		return "category"
	case formula.FieldStateAllows:
		return "stateAllows"
	case formula.FieldTradingMarkets:
		return "tradingMarkets"
	case formula.FieldPriceSubbed:
		return "price"
	case formula.FieldDateSubbed:
		return "date"
	case formula.FieldAltCodeSubbed:
		return "altCode"
	case formula.FieldAttributeSubbed:
		return "attribute"
	default:
		panic(fmt.Sprintf("zenith: unknown field id %d", int(id)))
	}
}

var fieldIDsByTag = func() map[string]formula.FieldID {
	fields := formula.Fields()
	m := make(map[string]formula.FieldID, len(fields))
	for _, id := range fields {
		m[EncodeFieldID(id)] = id
	}
	return m
}()

// TryDecodeFieldID returns the field with the given tuple tag.
func TryDecodeFieldID(tag string) (formula.FieldID, bool) {
	id, ok := fieldIDsByTag[tag]
	return id, ok
}

package formula

import "strconv"

// DataTypeID identifies the kind of value a field holds.
type DataTypeID int

const (
	DataTypeNumeric DataTypeID = iota
	DataTypeDate
	DataTypeText
	DataTypeBoolean
)

func (d DataTypeID) String() string {
	switch d {
	case DataTypeNumeric:
		return "Numeric"
	case DataTypeDate:
		return "Date"
	case DataTypeText:
		return "Text"
	case DataTypeBoolean:
		return "Boolean"
	default:
		return "DataTypeID(" + strconv.Itoa(int(d)) + ")"
	}
}

// StyleID identifies the shape of predicate a field supports.
type StyleID int

const (
	StyleInRange StyleID = iota
	StyleOverlaps
	StyleEquals
	StyleHasValueEquals
	StyleContains

	styleCount
)

// Styles returns all style ids in declared order.
func Styles() []StyleID {
	styles := make([]StyleID, 0, styleCount)
	for s := StyleID(0); s < styleCount; s++ {
		styles = append(styles, s)
	}
	return styles
}

func (s StyleID) String() string {
	switch s {
	case StyleInRange:
		return "InRange"
	case StyleOverlaps:
		return "Overlaps"
	case StyleEquals:
		return "Equals"
	case StyleHasValueEquals:
		return "HasValueEquals"
	case StyleContains:
		return "Contains"
	default:
		return "StyleID(" + strconv.Itoa(int(s)) + ")"
	}
}

// FieldID identifies a field in the scan field catalogue.
// Values are dense and start at zero.
type FieldID int

const (
	FieldAuctionPrice FieldID = iota
	FieldAuctionQuantity
	FieldAuctionRemainder
	FieldBestAskCount
	FieldBestAskPrice
	FieldBestAskQuantity
	FieldBestBidCount
	FieldBestBidPrice
	FieldBestBidQuantity
	FieldClosePrice
	FieldContractSize
	FieldHighPrice
	FieldLastPrice
	FieldLotSize
	FieldLowPrice
	FieldOpenInterest
	FieldOpenPrice
	FieldPreviousClose
	FieldShareIssue
	FieldStrikePrice
	FieldTrades
	FieldValueTraded
	FieldVolume
	FieldVwap
	FieldExpiryDate
	FieldIsIndex
	FieldCode
	FieldName
	FieldCallOrPut
	FieldCfi
	FieldClass
	FieldExchange
	FieldMarket
	FieldCurrency
	FieldExerciseType
	FieldQuotationBasis
	FieldState
	FieldStatusNote
	FieldCategory
	FieldStateAllows
	FieldTradingMarkets
	FieldPriceSubbed
	FieldDateSubbed
	FieldAltCodeSubbed
	FieldAttributeSubbed

	fieldCount
)

type fieldInfo struct {
	id       FieldID
	name     string
	dataType DataTypeID
	style    StyleID
	subbed   bool
}

// fieldInfos is indexed by FieldID. Entries are keyed so the compiler rejects
// duplicates; checkCatalogue catches a stored id that disagrees with its key
// and any id left without an entry.
var fieldInfos = [fieldCount]fieldInfo{
	FieldAuctionPrice:     {FieldAuctionPrice, "AuctionPrice", DataTypeNumeric, StyleInRange, false},
	FieldAuctionQuantity:  {FieldAuctionQuantity, "AuctionQuantity", DataTypeNumeric, StyleInRange, false},
	FieldAuctionRemainder: {FieldAuctionRemainder, "AuctionRemainder", DataTypeNumeric, StyleInRange, false},
	FieldBestAskCount:     {FieldBestAskCount, "BestAskCount", DataTypeNumeric, StyleInRange, false},
	FieldBestAskPrice:     {FieldBestAskPrice, "BestAskPrice", DataTypeNumeric, StyleInRange, false},
	FieldBestAskQuantity:  {FieldBestAskQuantity, "BestAskQuantity", DataTypeNumeric, StyleInRange, false},
	FieldBestBidCount:     {FieldBestBidCount, "BestBidCount", DataTypeNumeric, StyleInRange, false},
	FieldBestBidPrice:     {FieldBestBidPrice, "BestBidPrice", DataTypeNumeric, StyleInRange, false},
	FieldBestBidQuantity:  {FieldBestBidQuantity, "BestBidQuantity", DataTypeNumeric, StyleInRange, false},
	FieldClosePrice:       {FieldClosePrice, "ClosePrice", DataTypeNumeric, StyleInRange, false},
	FieldContractSize:     {FieldContractSize, "ContractSize", DataTypeNumeric, StyleInRange, false},
	FieldHighPrice:        {FieldHighPrice, "HighPrice", DataTypeNumeric, StyleInRange, false},
	FieldLastPrice:        {FieldLastPrice, "LastPrice", DataTypeNumeric, StyleInRange, false},
	FieldLotSize:          {FieldLotSize, "LotSize", DataTypeNumeric, StyleInRange, false},
	FieldLowPrice:         {FieldLowPrice, "LowPrice", DataTypeNumeric, StyleInRange, false},
	FieldOpenInterest:     {FieldOpenInterest, "OpenInterest", DataTypeNumeric, StyleInRange, false},
	FieldOpenPrice:        {FieldOpenPrice, "OpenPrice", DataTypeNumeric, StyleInRange, false},
	FieldPreviousClose:    {FieldPreviousClose, "PreviousClose", DataTypeNumeric, StyleInRange, false},
	FieldShareIssue:       {FieldShareIssue, "ShareIssue", DataTypeNumeric, StyleInRange, false},
	FieldStrikePrice:      {FieldStrikePrice, "StrikePrice", DataTypeNumeric, StyleInRange, false},
	FieldTrades:           {FieldTrades, "Trades", DataTypeNumeric, StyleInRange, false},
	FieldValueTraded:      {FieldValueTraded, "ValueTraded", DataTypeNumeric, StyleInRange, false},
	FieldVolume:           {FieldVolume, "Volume", DataTypeNumeric, StyleInRange, false},
	FieldVwap:             {FieldVwap, "Vwap", DataTypeNumeric, StyleInRange, false},
	FieldExpiryDate:       {FieldExpiryDate, "ExpiryDate", DataTypeDate, StyleInRange, false},
	FieldIsIndex:          {FieldIsIndex, "IsIndex", DataTypeBoolean, StyleEquals, false},
	FieldCode:             {FieldCode, "Code", DataTypeText, StyleContains, false},
	FieldName:             {FieldName, "Name", DataTypeText, StyleContains, false},
	FieldCallOrPut:        {FieldCallOrPut, "CallOrPut", DataTypeText, StyleEquals, false},
	FieldCfi:              {FieldCfi, "Cfi", DataTypeText, StyleEquals, false},
	FieldClass:            {FieldClass, "Class", DataTypeText, StyleEquals, false},
	FieldExchange:         {FieldExchange, "Exchange", DataTypeText, StyleEquals, false},
	FieldMarket:           {FieldMarket, "Market", DataTypeText, StyleEquals, false},
	FieldCurrency:         {FieldCurrency, "Currency", DataTypeText, StyleHasValueEquals, false},
	FieldExerciseType:     {FieldExerciseType, "ExerciseType", DataTypeText, StyleHasValueEquals, false},
	FieldQuotationBasis:   {FieldQuotationBasis, "QuotationBasis", DataTypeText, StyleHasValueEquals, false},
	FieldState:            {FieldState, "State", DataTypeText, StyleHasValueEquals, false},
	FieldStatusNote:       {FieldStatusNote, "StatusNote", DataTypeText, StyleHasValueEquals, false},
	FieldCategory:         {FieldCategory, "Category", DataTypeText, StyleOverlaps, false},
	FieldStateAllows:      {FieldStateAllows, "StateAllows", DataTypeText, StyleOverlaps, false},
	FieldTradingMarkets:   {FieldTradingMarkets, "TradingMarkets", DataTypeText, StyleOverlaps, false},
	FieldPriceSubbed:      {FieldPriceSubbed, "PriceSubbed", DataTypeNumeric, StyleInRange, true},
	FieldDateSubbed:       {FieldDateSubbed, "DateSubbed", DataTypeDate, StyleInRange, true},
	FieldAltCodeSubbed:    {FieldAltCodeSubbed, "AltCodeSubbed", DataTypeText, StyleContains, true},
	FieldAttributeSubbed:  {FieldAttributeSubbed, "AttributeSubbed", DataTypeText, StyleContains, true},
}

func init() {
	if err := CheckCatalogue(); err != nil {
		panic(err)
	}
}

// CatalogOrderError reports a field catalogue entry whose stored id does not
// match its position. It is a configuration fault, never a runtime condition.
type CatalogOrderError struct {
	Index  int
	Stored FieldID
	Name   string
}

func (e *CatalogOrderError) Error() string {
	return "formula: field catalogue out of order at index " + strconv.Itoa(e.Index) +
		": entry " + strconv.Quote(e.Name) + " has id " + strconv.Itoa(int(e.Stored))
}

// CheckCatalogue verifies that every catalogue entry sits at the index of its
// own id. The package runs it once at initialisation and panics on failure.
func CheckCatalogue() error {
	return checkCatalogue(fieldInfos[:])
}

func checkCatalogue(infos []fieldInfo) error {
	for i, info := range infos {
		if int(info.id) != i || info.name == "" {
			return &CatalogOrderError{Index: i, Stored: info.id, Name: info.name}
		}
	}
	return nil
}

// Fields returns every field id in declared order.
func Fields() []FieldID {
	ids := make([]FieldID, 0, fieldCount)
	for id := FieldID(0); id < fieldCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether id is a member of the catalogue.
func (id FieldID) Valid() bool {
	return id >= 0 && id < fieldCount
}

func (id FieldID) String() string {
	if !id.Valid() {
		return "FieldID(" + strconv.Itoa(int(id)) + ")"
	}
	return fieldInfos[id].name
}

// DataType returns the data type of the field.
func (id FieldID) DataType() DataTypeID {
	return fieldInfos[id].dataType
}

// Style returns the predicate style of the field.
func (id FieldID) Style() StyleID {
	return fieldInfos[id].style
}

// IsSubbed reports whether the field is composite and addressed through a sub-field.
func (id FieldID) IsSubbed() bool {
	return fieldInfos[id].subbed
}

// IsNumericRange reports whether the field is a scalar numeric field that can be
// read with NumericFieldValueGetNode or filtered with NumericFieldInRangeNode.
func (id FieldID) IsNumericRange() bool {
	info := fieldInfos[id]
	return info.dataType == DataTypeNumeric && info.style == StyleInRange && !info.subbed
}

// IsDateRange reports whether the field is a scalar date field.
func (id FieldID) IsDateRange() bool {
	info := fieldInfos[id]
	return info.dataType == DataTypeDate && info.style == StyleInRange && !info.subbed
}

package formula

import "strconv"

// PriceSubFieldID selects a price of the PriceSubbed field.
type PriceSubFieldID int

const (
	PriceSubFieldLast PriceSubFieldID = iota
	PriceSubFieldOpen
	PriceSubFieldHigh
	PriceSubFieldLow
	PriceSubFieldClose
	PriceSubFieldSettlement

	priceSubFieldCount
)

// PriceSubFields returns all price sub-field ids in declared order.
func PriceSubFields() []PriceSubFieldID {
	ids := make([]PriceSubFieldID, 0, priceSubFieldCount)
	for id := PriceSubFieldID(0); id < priceSubFieldCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

func (id PriceSubFieldID) String() string {
	switch id {
	case PriceSubFieldLast:
		return "Last"
	case PriceSubFieldOpen:
		return "Open"
	case PriceSubFieldHigh:
		return "High"
	case PriceSubFieldLow:
		return "Low"
	case PriceSubFieldClose:
		return "Close"
	case PriceSubFieldSettlement:
		return "Settlement"
	default:
		return "PriceSubFieldID(" + strconv.Itoa(int(id)) + ")"
	}
}

// DateSubFieldID selects a date of the DateSubbed field.
type DateSubFieldID int

const (
	DateSubFieldDividend DateSubFieldID = iota
	DateSubFieldExpiry
	DateSubFieldListing
	DateSubFieldDelisting
	DateSubFieldMaturity

	dateSubFieldCount
)

// DateSubFields returns all date sub-field ids in declared order.
func DateSubFields() []DateSubFieldID {
	ids := make([]DateSubFieldID, 0, dateSubFieldCount)
	for id := DateSubFieldID(0); id < dateSubFieldCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

func (id DateSubFieldID) String() string {
	switch id {
	case DateSubFieldDividend:
		return "Dividend"
	case DateSubFieldExpiry:
		return "Expiry"
	case DateSubFieldListing:
		return "Listing"
	case DateSubFieldDelisting:
		return "Delisting"
	case DateSubFieldMaturity:
		return "Maturity"
	default:
		return "DateSubFieldID(" + strconv.Itoa(int(id)) + ")"
	}
}

// AltCodeSubFieldID selects an alternate code of the AltCodeSubbed field.
type AltCodeSubFieldID int

const (
	AltCodeSubFieldTicker AltCodeSubFieldID = iota
	AltCodeSubFieldIsin
	AltCodeSubFieldBase
	AltCodeSubFieldGics
	AltCodeSubFieldRic
	AltCodeSubFieldShort
	AltCodeSubFieldLong
	AltCodeSubFieldUid

	altCodeSubFieldCount
)

// AltCodeSubFields returns all alternate code sub-field ids in declared order.
func AltCodeSubFields() []AltCodeSubFieldID {
	ids := make([]AltCodeSubFieldID, 0, altCodeSubFieldCount)
	for id := AltCodeSubFieldID(0); id < altCodeSubFieldCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

func (id AltCodeSubFieldID) String() string {
	switch id {
	case AltCodeSubFieldTicker:
		return "Ticker"
	case AltCodeSubFieldIsin:
		return "Isin"
	case AltCodeSubFieldBase:
		return "Base"
	case AltCodeSubFieldGics:
		return "Gics"
	case AltCodeSubFieldRic:
		return "Ric"
	case AltCodeSubFieldShort:
		return "Short"
	case AltCodeSubFieldLong:
		return "Long"
	case AltCodeSubFieldUid:
		return "Uid"
	default:
		return "AltCodeSubFieldID(" + strconv.Itoa(int(id)) + ")"
	}
}

// AttributeSubFieldID selects an attribute of the AttributeSubbed field.
type AttributeSubFieldID int

const (
	AttributeSubFieldCategory AttributeSubFieldID = iota
	AttributeSubFieldClass
	AttributeSubFieldDelivery
	AttributeSubFieldMaxRss
	AttributeSubFieldSector
	AttributeSubFieldShort
	AttributeSubFieldShortSuspended
	AttributeSubFieldSubSector

	attributeSubFieldCount
)

// AttributeSubFields returns all attribute sub-field ids in declared order.
func AttributeSubFields() []AttributeSubFieldID {
	ids := make([]AttributeSubFieldID, 0, attributeSubFieldCount)
	for id := AttributeSubFieldID(0); id < attributeSubFieldCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

func (id AttributeSubFieldID) String() string {
	switch id {
	case AttributeSubFieldCategory:
		return "Category"
	case AttributeSubFieldClass:
		return "Class"
	case AttributeSubFieldDelivery:
		return "Delivery"
	case AttributeSubFieldMaxRss:
		return "MaxRss"
	case AttributeSubFieldSector:
		return "Sector"
	case AttributeSubFieldShort:
		return "Short"
	case AttributeSubFieldShortSuspended:
		return "ShortSuspended"
	case AttributeSubFieldSubSector:
		return "SubSector"
	default:
		return "AttributeSubFieldID(" + strconv.Itoa(int(id)) + ")"
	}
}

// TextContainsAsID controls where a text-contains value must match.
type TextContainsAsID int

const (
	TextContainsAsNone TextContainsAsID = iota
	TextContainsAsFromStart
	TextContainsAsFromEnd
	TextContainsAsExact

	textContainsAsCount
)

// TextContainsAsIDs returns all text-contains match styles in declared order.
func TextContainsAsIDs() []TextContainsAsID {
	ids := make([]TextContainsAsID, 0, textContainsAsCount)
	for id := TextContainsAsID(0); id < textContainsAsCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

func (id TextContainsAsID) String() string {
	switch id {
	case TextContainsAsNone:
		return "None"
	case TextContainsAsFromStart:
		return "FromStart"
	case TextContainsAsFromEnd:
		return "FromEnd"
	case TextContainsAsExact:
		return "Exact"
	default:
		return "TextContainsAsID(" + strconv.Itoa(int(id)) + ")"
	}
}

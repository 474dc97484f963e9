package zenith

import (
	"fmt"

	"github.com/hugr-lab/zenith-scan/formula"
)

// EncodePriceSubFieldID returns the tuple tag of a price sub-field.
func EncodePriceSubFieldID(id formula.PriceSubFieldID) string {
	switch id {
	case formula.PriceSubFieldLast:
		return "Last"
	case formula.PriceSubFieldOpen:
		return "Open"
	case formula.PriceSubFieldHigh:
		return "High"
	case formula.PriceSubFieldLow:
		return "Low"
	case formula.PriceSubFieldClose:
		return "Close"
	case formula.PriceSubFieldSettlement:
		return "Settlement"
	default:
		panic(fmt.Sprintf("zenith: unknown price sub-field id %d", int(id)))
	}
}

// TryDecodePriceSubFieldID returns the price sub-field with the given tag.
func TryDecodePriceSubFieldID(tag string) (formula.PriceSubFieldID, bool) {
	switch tag {
	case "Last":
		return formula.PriceSubFieldLast, true
	case "Open":
		return formula.PriceSubFieldOpen, true
	case "High":
		return formula.PriceSubFieldHigh, true
	case "Low":
		return formula.PriceSubFieldLow, true
	case "Close":
		return formula.PriceSubFieldClose, true
	case "Settlement":
		return formula.PriceSubFieldSettlement, true
	default:
		return 0, false
	}
}

// EncodeDateSubFieldID returns the tuple tag of a date sub-field.
func EncodeDateSubFieldID(id formula.DateSubFieldID) string {
	switch id {
	case formula.DateSubFieldDividend:
		return "Dividend"
	case formula.DateSubFieldExpiry:
		return "Expiry"
	case formula.DateSubFieldListing:
		return "Listing"
	case formula.DateSubFieldDelisting:
		return "Delisting"
	case formula.DateSubFieldMaturity:
		return "Maturity"
	default:
		panic(fmt.Sprintf("zenith: unknown date sub-field id %d", int(id)))
	}
}

// TryDecodeDateSubFieldID returns the date sub-field with the given tag.
func TryDecodeDateSubFieldID(tag string) (formula.DateSubFieldID, bool) {
	switch tag {
	case "Dividend":
		return formula.DateSubFieldDividend, true
	case "Expiry":
		return formula.DateSubFieldExpiry, true
	case "Listing":
		return formula.DateSubFieldListing, true
	case "Delisting":
		return formula.DateSubFieldDelisting, true
	case "Maturity":
		return formula.DateSubFieldMaturity, true
	default:
		return 0, false
	}
}

// EncodeAltCodeSubFieldID returns the tuple tag of an alternate code sub-field.
func EncodeAltCodeSubFieldID(id formula.AltCodeSubFieldID) string {
	switch id {
	case formula.AltCodeSubFieldTicker:
		return "Ticker"
	case formula.AltCodeSubFieldIsin:
		return "ISIN"
	case formula.AltCodeSubFieldBase:
		return "Base"
	case formula.AltCodeSubFieldGics:
		return "GICS"
	case formula.AltCodeSubFieldRic:
		return "RIC"
	case formula.AltCodeSubFieldShort:
		return "Short"
	case formula.AltCodeSubFieldLong:
		return "Long"
	case formula.AltCodeSubFieldUid:
		return "UID"
	default:
		panic(fmt.Sprintf("zenith: unknown alt code sub-field id %d", int(id)))
	}
}

// TryDecodeAltCodeSubFieldID returns the alternate code sub-field with the given tag.
func TryDecodeAltCodeSubFieldID(tag string) (formula.AltCodeSubFieldID, bool) {
	switch tag {
	case "Ticker":
		return formula.AltCodeSubFieldTicker, true
	case "ISIN":
		return formula.AltCodeSubFieldIsin, true
	case "Base":
		return formula.AltCodeSubFieldBase, true
	case "GICS":
		return formula.AltCodeSubFieldGics, true
	case "RIC":
		return formula.AltCodeSubFieldRic, true
	case "Short":
		return formula.AltCodeSubFieldShort, true
	case "Long":
		return formula.AltCodeSubFieldLong, true
	case "UID":
		return formula.AltCodeSubFieldUid, true
	default:
		return 0, false
	}
}

// EncodeAttributeSubFieldID returns the tuple tag of an attribute sub-field.
func EncodeAttributeSubFieldID(id formula.AttributeSubFieldID) string {
	switch id {
	case formula.AttributeSubFieldCategory:
		return "Category"
	case formula.AttributeSubFieldClass:
		return "Class"
	case formula.AttributeSubFieldDelivery:
		return "Delivery"
	case formula.AttributeSubFieldMaxRss:
		return "MaxRSS"
	case formula.AttributeSubFieldSector:
		return "Sector"
	case formula.AttributeSubFieldShort:
		return "Short"
	case formula.AttributeSubFieldShortSuspended:
		return "ShortSuspended"
	case formula.AttributeSubFieldSubSector:
		return "SubSector"
	default:
		panic(fmt.Sprintf("zenith: unknown attribute sub-field id %d", int(id)))
	}
}

// TryDecodeAttributeSubFieldID returns the attribute sub-field with the given tag.
func TryDecodeAttributeSubFieldID(tag string) (formula.AttributeSubFieldID, bool) {
	switch tag {
	case "Category":
		return formula.AttributeSubFieldCategory, true
	case "Class":
		return formula.AttributeSubFieldClass, true
	case "Delivery":
		return formula.AttributeSubFieldDelivery, true
	case "MaxRSS":
		return formula.AttributeSubFieldMaxRss, true
	case "Sector":
		return formula.AttributeSubFieldSector, true
	case "Short":
		return formula.AttributeSubFieldShort, true
	case "ShortSuspended":
		return formula.AttributeSubFieldShortSuspended, true
	case "SubSector":
		return formula.AttributeSubFieldSubSector, true
	default:
		return 0, false
	}
}

// EncodeTextContainsAsID returns the wire value of a text-contains match style.
func EncodeTextContainsAsID(id formula.TextContainsAsID) string {
	switch id {
	case formula.TextContainsAsNone:
		return "None"
	case formula.TextContainsAsFromStart:
		return "FromStart"
	case formula.TextContainsAsFromEnd:
		return "FromEnd"
	case formula.TextContainsAsExact:
		return "Exact"
	default:
		panic(fmt.Sprintf("zenith: unknown text contains as id %d", int(id)))
	}
}

// TryDecodeTextContainsAsID returns the match style with the given wire value.
func TryDecodeTextContainsAsID(value string) (formula.TextContainsAsID, bool) {
	switch value {
	case "None":
		return formula.TextContainsAsNone, true
	case "FromStart":
		return formula.TextContainsAsFromStart, true
	case "FromEnd":
		return formula.TextContainsAsFromEnd, true
	case "Exact":
		return formula.TextContainsAsExact, true
	default:
		return 0, false
	}
}

// Package zenith converts scan formulas to and from Zenith tuples.
//
// A Zenith tuple is a schema-less JSON array whose first element names the
// node and whose remaining elements are its parameters:
//
//	["and", ["code"], ["volume", {"Min": 100}]]
//	["add", ["neg", 5], "bestBidPrice"]
//
// In Go a tuple is held as the generic values produced by JSON decoding:
// []any, string, float64, bool, map[string]any and nil.
//
// Encoding never fails for a well-formed tree. Decoding reports the first
// problem as a *DecodeError and returns a DecodeProgress trail describing
// how far it got:
//
//	node, progress, err := zenith.DecodeBoolean(tuple)
//	if err != nil {
//		if failed, ok := progress.Failed(); ok {
//			log.Printf("failed at %q depth %d", failed.TupleNodeType, failed.TupleNodeDepth)
//		}
//	}
//
// ParseBoolean, ParseNumeric and the Marshal functions work directly on
// JSON bytes.
package zenith

// Package scan manages named scan definitions: criteria selecting symbols,
// an optional rank formula ordering them, and their persistence.
//
// Formulas are stored as compact blobs: the Zenith tuple of the formula,
// MessagePack encoded and zstd compressed.
//
//	codec, err := scan.NewCodec(logger)
//	if err != nil {
//	    return err
//	}
//	defer codec.Close()
//
//	store, err := scan.NewDuckDBStore(ctx, db, scan.StoreConfig{Codec: codec})
//	if err != nil {
//	    return err
//	}
//
//	def := &scan.Definition{Name: "Liquid", Criteria: criteria, Rank: rank}
//	if err := store.Save(ctx, def); err != nil {
//	    return err
//	}
//
//	hits, err := scan.Run(def, symbols)
//
// MemoryStore offers the same Store interface without a database.
package scan

package dedupe

import "github.com/geo-dedupe/internal/config"

// NewAddressDeduperFromSettings wires an address deduper from loaded
// engine settings.
func NewAddressDeduperFromSettings(expander Expander, hasher GeoHasher, s config.Settings) *AddressDeduper {
	return NewAddressDeduper(expander, hasher, Options{
		GeohashPrecision: s.AddressGeohashPrecision,
		MaxBlockingKeys:  s.MaxBlockingKeys,
		Debug:            s.Debug,
	})
}

// NewVenueDeduperFromSettings wires a venue deduper from loaded engine
// settings. The settings' name threshold overrides the name config's
// when positive.
func NewVenueDeduperFromSettings(expander Expander, hasher GeoHasher, phonetic PhoneticEncoder, nameCfg NameConfig, s config.Settings) *VenueDeduper {
	if s.NameDupeThreshold > 0 {
		nameCfg.DupeThreshold = s.NameDupeThreshold
	}
	return NewVenueDeduper(expander, hasher, phonetic, nameCfg, Options{
		GeohashPrecision: s.VenueGeohashPrecision,
		MaxBlockingKeys:  s.MaxBlockingKeys,
		Debug:            s.Debug,
	})
}

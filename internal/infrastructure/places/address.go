package places

import "strings"

// ParsedAddress is the city/state/zip decomposition of a formatted address
type ParsedAddress struct {
	City    string
	State   string
	ZipCode string
}

// AddressParser decomposes a vendor-formatted address string. The default
// implementation is positional and US-centric; a structured-address
// implementation can replace it without touching the store normalizer.
type AddressParser interface {
	Parse(formattedAddress string) ParsedAddress
}

// USAddressParser parses addresses shaped like
// "123 Main St, Springfield, IL 62704, USA": state and zip come from the
// second-to-last comma segment, city from the third-to-last.
type USAddressParser struct{}

// Parse implements AddressParser
func (USAddressParser) Parse(formattedAddress string) ParsedAddress {
	parts := strings.Split(formattedAddress, ", ")

	var parsed ParsedAddress
	if len(parts) >= 2 {
		stateZip := strings.Split(parts[len(parts)-2], " ")
		parsed.State = stateZip[0]
		if len(stateZip) > 1 {
			parsed.ZipCode = stateZip[1]
		}
	}
	if len(parts) >= 3 {
		parsed.City = parts[len(parts)-3]
	}
	return parsed
}

// Package nomcode provides identifiers of nomenclatural codes that
// govern scientific names.
package nomcode

// Code is a nomenclatural code. Names are governed by different codes
// depending on the kind of organism they denote.
type Code int

const (
	// Unknown is used when a name carries no hints about its code.
	Unknown Code = iota
	// Bacterial is the International Code of Nomenclature of Prokaryotes.
	Bacterial
	// Botanical is the International Code of Nomenclature for algae,
	// fungi, and plants.
	Botanical
	// Cultivars is the International Code of Nomenclature for
	// Cultivated Plants.
	Cultivars
	// Virus is the International Code of Virus Classification and
	// Nomenclature.
	Virus
	// Zoological is the International Code of Zoological Nomenclature.
	Zoological
)

var codeStrings = map[Code]string{
	Unknown:    "",
	Bacterial:  "ICNP",
	Botanical:  "ICN",
	Cultivars:  "ICNCP",
	Virus:      "ICVCN",
	Zoological: "ICZN",
}

// String returns the conventional acronym of a code, an empty string
// for Unknown.
func (c Code) String() string {
	return codeStrings[c]
}

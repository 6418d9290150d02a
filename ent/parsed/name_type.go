package parsed

// NameType is the coarse category of a name string. It doubles as the
// classification of unparsable inputs.
type NameType int

const (
	// Unset means no type was determined yet.
	Unset NameType = iota
	// NoName marks strings without any name, e.g. empty strings or
	// strings without letters.
	NoName
	// Placeholder marks strings of placeholder vocabulary such as
	// "unknown" or "incertae sedis".
	Placeholder
	// Scientific marks well-formed Latin names.
	Scientific
	// Informal marks names with manuscript idioms, gene markers, or
	// other departures from the codes that still carry a usable name.
	Informal
	// OTU marks operational taxonomic unit identifiers such as BOLD
	// BINs or UNITE SH codes.
	OTU
	// HybridFormula marks crosses of two names joined by a hybrid
	// marker, which have no single structured representation.
	HybridFormula
	// Virus marks virus, phage, and similar names outside the grammar.
	Virus
)

var nameTypeStrings = map[NameType]string{
	NoName:        "no name",
	Placeholder:   "placeholder",
	Scientific:    "scientific",
	Informal:      "informal",
	OTU:           "otu",
	HybridFormula: "hybrid formula",
	Virus:         "virus",
}

func (nt NameType) String() string {
	return nameTypeStrings[nt]
}

// IsParsable reports whether names of this type go through the
// structural grammar.
func (nt NameType) IsParsable() bool {
	return nt == Scientific || nt == Informal
}

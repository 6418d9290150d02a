package parsed

// Warning codes collected while a name is cleaned and matched.
// Warnings never abort a parse.
const (
	WarnHTMLEntities       = "html entities removed"
	WarnXMLEntities        = "xml entities removed"
	WarnXMLTags            = "xml tags removed"
	WarnEnclosingQuotes    = "removed enclosing quotes"
	WarnQuestionMarks      = "question marks removed"
	WarnMissingGenus       = "epithet without a genus"
	WarnLowercaseMonomial  = "lower case monomial"
	WarnIndetSpecies       = "indetermined species without an epithet"
	WarnIndetInfraspecies  = "indetermined infraspecies without an epithet"
	WarnIndetCultivar      = "indetermined cultivar without an epithet"
	WarnHigherRankBinomial = "binomial with rank above species aggregate"
	WarnUnusualCharacters  = "unusual characters"
	WarnNullEpithet        = "literal null word found"
	WarnSubspeciesAssigned = "trinomial without rank marker, subspecies assigned"
	WarnRankMismatch       = "rank marker inside an epithet"
	WarnFourPartedName     = "four-parted name, intermediate epithet discarded"
	WarnNomStatusRank      = "rank taken from a nomenclatural note"
	WarnImprintYear        = "imprint year removed"
	WarnBlacklistedEpithet = "placeholder word removed"
)

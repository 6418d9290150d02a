package parsed_test

import (
	"testing"

	"github.com/gnames/gnomen/ent/nomcode"
	"github.com/gnames/gnomen/ent/parsed"
	"github.com/gnames/gnomen/ent/rank"
	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	pn := parsed.ParsedName{
		Genus:           "Abies",
		SpecificEpithet: "alba",
		CombinationAuthorship: parsed.Authorship{
			Authors: []string{"Mill."},
		},
	}
	assert.Equal(t, "Abies alba Mill.", pn.Canonical())
	assert.Equal(t, "Abies alba", pn.CanonicalWithoutAuthorship())
	assert.Equal(t, "Abies alba", pn.CanonicalMinimal())
}

func TestCanonicalBasionym(t *testing.T) {
	pn := parsed.ParsedName{
		Genus:                "Agaricus",
		SpecificEpithet:      "compactus",
		InfraspecificEpithet: "sarcocephalus",
		Rank:                 rank.InfraspecificName,
		BasionymAuthorship:   parsed.Authorship{Authors: []string{"Fr."}},
		CombinationAuthorship: parsed.Authorship{
			Authors: []string{"Fr."},
		},
	}
	assert.Equal(t,
		"Agaricus compactus sarcocephalus (Fr.) Fr.",
		pn.Canonical(),
	)
}

func TestCanonicalAutonym(t *testing.T) {
	pn := parsed.ParsedName{
		Genus:                "Abies",
		SpecificEpithet:      "alba",
		InfraspecificEpithet: "alba",
		Rank:                 rank.Subspecies,
		CombinationAuthorship: parsed.Authorship{
			Authors: []string{"Mill."},
		},
	}
	assert.Equal(t, "Abies alba subsp. alba", pn.Canonical())
}

func TestCanonicalHybrid(t *testing.T) {
	var pn parsed.ParsedName
	pn.SetGenus("×Pyrocrataegus")
	pn.SetSpecificEpithet("willei")
	pn.CombinationAuthorship = parsed.Authorship{
		Authors: []string{"L.L.Daniel"},
	}
	assert.Equal(t, "× Pyrocrataegus willei L.L.Daniel", pn.Canonical())
	assert.Equal(t, "Pyrocrataegus willei", pn.CanonicalMinimal())
}

func TestCanonicalNothoSubspecies(t *testing.T) {
	var pn parsed.ParsedName
	pn.SetGenus("Dianthus")
	pn.SetSpecificEpithet("caryophyllus")
	pn.SetInfraspecificEpithet("×fimbriatus")
	pn.Rank = rank.Subspecies
	assert.Equal(t,
		"Dianthus caryophyllus nothosubsp. fimbriatus",
		pn.Canonical(),
	)
}

func TestCanonicalZoologicalSubgenus(t *testing.T) {
	pn := parsed.ParsedName{
		Genus:               "Murex",
		InfragenericEpithet: "Promurex",
		Rank:                rank.Subgenus,
		Code:                nomcode.Zoological,
	}
	assert.Equal(t, "Murex (Promurex)", pn.Canonical())
	assert.Equal(t, "Promurex", pn.CanonicalMinimal())
}

func TestCanonicalBotanicalSection(t *testing.T) {
	pn := parsed.ParsedName{
		Genus:               "Maxillaria",
		InfragenericEpithet: "Multiflorae",
		Rank:                rank.Section,
	}
	assert.Equal(t, "Maxillaria sect. Multiflorae", pn.Canonical())
}

func TestSubgenusInsideBinomial(t *testing.T) {
	pn := parsed.ParsedName{
		Genus:               "Nitocris",
		InfragenericEpithet: "Nitocris",
		SpecificEpithet:     "similis",
		Code:                nomcode.Zoological,
		Rank:                rank.Species,
	}
	// the canonical form drops the bracketed subgenus
	assert.Equal(t, "Nitocris similis", pn.Canonical())
	assert.Equal(t, "Nitocris (Nitocris) similis", pn.CanonicalComplete())
}

func TestIndetermined(t *testing.T) {
	pn := parsed.ParsedName{
		Genus: "Puma",
		Rank:  rank.Species,
		CombinationAuthorship: parsed.Authorship{
			Authors: []string{"L."},
		},
	}
	// indet names suppress authorship
	assert.Equal(t, "Puma spec.", pn.Canonical())

	pn = parsed.ParsedName{
		Genus:           "Abies",
		SpecificEpithet: "alba",
		Rank:            rank.Variety,
	}
	assert.Equal(t, "Abies alba var.", pn.Canonical())
}

func TestCultivar(t *testing.T) {
	pn := parsed.ParsedName{
		Genus:           "Abutilon",
		Rank:            rank.Cultivar,
		CultivarEpithet: "Kentish Belle",
	}
	assert.Equal(t, "Abutilon 'Kentish Belle'", pn.Canonical())
	assert.Equal(t, "Abutilon", pn.CanonicalMinimal())
}

func TestCandidatus(t *testing.T) {
	pn := parsed.ParsedName{
		Genus:           "Phytoplasma",
		SpecificEpithet: "allocasuarinae",
		Candidatus:      true,
	}
	assert.Equal(t,
		"\"Candidatus Phytoplasma allocasuarinae\"",
		pn.Canonical(),
	)
}

func TestStrain(t *testing.T) {
	pn := parsed.ParsedName{
		Genus:           "Advenella",
		SpecificEpithet: "kashmirensis",
		Strain:          "W13003",
	}
	assert.Equal(t, "Advenella kashmirensis W13003", pn.Canonical())
	assert.Equal(t, "Advenella kashmirensis", pn.CanonicalMinimal())
}

func TestSanctioningAuthor(t *testing.T) {
	pn := parsed.ParsedName{
		Genus:             "Agaricus",
		SpecificEpithet:   "compactus",
		SanctioningAuthor: "Fr.",
		CombinationAuthorship: parsed.Authorship{
			Authors: []string{"With."},
		},
	}
	assert.Equal(t, "Agaricus compactus With. : Fr.", pn.Canonical())
}

func TestCompleteWithNotes(t *testing.T) {
	pn := parsed.ParsedName{
		Genus:              "Abies",
		SpecificEpithet:    "alba",
		TaxonomicNote:      "sensu Klett & Richt.",
		NomenclaturalNotes: "nom. illeg.",
		Remarks:            "aff.",
	}
	assert.Equal(t, "Abies alba", pn.Canonical())
	assert.Equal(t,
		"Abies alba sensu Klett & Richt., nom. illeg. [aff.]",
		pn.CanonicalComplete(),
	)
}

func TestASCIITransliteration(t *testing.T) {
	pn := parsed.ParsedName{
		Genus:           "Sphæria",
		SpecificEpithet: "squamulæ",
	}
	// ligatures decompose even in the full canonical form
	assert.Equal(t, "Sphaeria squamulae", pn.Canonical())

	pn = parsed.ParsedName{
		Genus:           "Erioptera",
		SpecificEpithet: "sørensenia",
	}
	assert.Equal(t, "Erioptera sørensenia", pn.Canonical())
	assert.Equal(t, "Erioptera sorensenia", pn.CanonicalMinimal())

	pn = parsed.ParsedName{
		Genus:           "Dysponetus",
		SpecificEpithet: "caecus",
		CombinationAuthorship: parsed.Authorship{
			Authors: []string{"Böggemann"},
		},
	}
	// the minimal form drops authorship, transliterated authors need
	// an explicit flag combination
	assert.Equal(t, "Dysponetus caecus", pn.CanonicalMinimal())
	assert.Equal(t, "Dysponetus caecus Boggemann", pn.BuildName(parsed.FormatOpts{
		Authorship: true,
		ASCIIOnly:  true,
	}))
}

func TestAuthorshipComplete(t *testing.T) {
	pn := parsed.ParsedName{
		BasionymAuthorship: parsed.Authorship{
			Authors: []string{"Fr."},
			Year:    "1821",
		},
		CombinationAuthorship: parsed.Authorship{
			ExAuthors: []string{"Carrière"},
			Authors:   []string{"Rehder", "Wilson"},
			Year:      "1914",
		},
	}
	assert.Equal(t,
		"(Fr., 1821) Carrière ex Rehder & Wilson, 1914",
		pn.AuthorshipComplete(),
	)
	assert.Empty(t, (&parsed.ParsedName{}).AuthorshipComplete())
}

func TestAuthorString(t *testing.T) {
	a := parsed.Authorship{
		Authors: []string{"L."},
		Year:    "1758",
	}
	assert.Equal(t, "L., 1758", parsed.AuthorString(a, true))
	assert.Equal(t, "L.", parsed.AuthorString(a, false))
}

package gnomen_test

import (
	"context"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/gnames/gnomen"
	"github.com/gnames/gnomen/ent/parsed"
	"github.com/gnames/gnomen/ent/rank"
	"github.com/gnames/gnomen/pkg/config"
	"github.com/gnames/gnuuid"
)

var _ = Describe("GNomen", func() {
	gn := New(config.New())

	Describe("Parse", func() {
		It("breaks a binomial into its elements", func() {
			pn, err := gn.Parse("Abies alba Mill.", rank.Unranked)
			Expect(err).ToNot(HaveOccurred())
			Expect(pn.Genus).To(Equal("Abies"))
			Expect(pn.SpecificEpithet).To(Equal("alba"))
			Expect(pn.CombinationAuthorship.Authors).To(Equal([]string{"Mill."}))
			Expect(pn.Canonical()).To(Equal("Abies alba Mill."))
			Expect(pn.CanonicalWithoutAuthorship()).To(Equal("Abies alba"))
			Expect(pn.State).To(Equal(parsed.Complete))
		})

		It("uses an externally known rank", func() {
			pn, err := gn.Parse("Lepidoptera", rank.Order)
			Expect(err).ToNot(HaveOccurred())
			Expect(pn.Uninomial).To(Equal("Lepidoptera"))
			Expect(pn.Rank).To(Equal(rank.Order))
		})

		It("classifies unparsable names", func() {
			_, err := gn.Parse("Cactus virus 2", rank.Unranked)
			Expect(err).To(HaveOccurred())
			var unp *parsed.UnparsableError
			Expect(err).To(BeAssignableToTypeOf(unp))
		})
	})

	Describe("ParseQuietly", func() {
		It("returns a degenerate name instead of an error", func() {
			pn := gn.ParseQuietly("Cactus virus 2", rank.Unranked)
			Expect(pn).ToNot(BeNil())
			Expect(pn.Type).To(Equal(parsed.Virus))
			Expect(pn.State).To(Equal(parsed.None))
			Expect(pn.Verbatim).To(Equal("Cactus virus 2"))
		})

		It("behaves like Parse for good names", func() {
			pn := gn.ParseQuietly("Abies alba Mill.", rank.Unranked)
			Expect(pn.CanonicalWithoutAuthorship()).To(Equal("Abies alba"))
		})
	})

	Describe("ParseToCanonical", func() {
		It("returns the canonical form", func() {
			can := gn.ParseToCanonical("Abies alba Mill.")
			Expect(can).To(Equal("Abies alba"))
		})

		It("returns an empty string on failure", func() {
			can := gn.ParseToCanonical("incertae sedis")
			Expect(can).To(Equal(""))
		})
	})

	Describe("ParseToCanonicalOrOriginal", func() {
		It("falls back to the normalized input", func() {
			res := gn.ParseToCanonicalOrOriginal("  incertae   sedis ")
			Expect(res).To(Equal("incertae sedis"))
		})
	})

	Describe("ParseStream", func() {
		It("parses all names of a batch", func() {
			names := []string{
				"Abies alba Mill.",
				"Pomatomus saltatrix (Linnaeus, 1766)",
				"Cactus virus 2",
				"Bubo bubo",
			}
			chIn := make(chan string)
			chOut := make(chan Result)

			go func() {
				for _, n := range names {
					chIn <- n
				}
				close(chIn)
			}()

			done := make(chan error)
			go func() {
				done <- gn.ParseStream(context.Background(), chIn, chOut)
			}()

			ids := make(map[string]*parsed.ParsedName)
			for res := range chOut {
				ids[res.ID] = res.Name
			}
			Expect(<-done).To(Succeed())
			Expect(ids).To(HaveLen(len(names)))

			for _, n := range names {
				pn, ok := ids[gnuuid.New(n).String()]
				Expect(ok).To(BeTrue())
				Expect(pn.Verbatim).To(Equal(n))
			}
		})
	})
})

package gnomen_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestGnomen(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "GNomen Suite")
}

package sha256

import (
	"math/big"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSHA256(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "SHA256 Suite")
}

func digestAsInt(d [Size]byte) *big.Int {
	return new(big.Int).SetBytes(d[:])
}

var _ = Describe("Sum256", func() {
	DescribeTable("matches known test vectors",
		func(input string, want string) {
			d := Sum256([]byte(input))
			wantInt, ok := new(big.Int).SetString(want, 10)
			Expect(ok).To(BeTrue())
			Expect(digestAsInt(d)).To(Equal(wantInt))
		},
		Entry("empty string", "", "102987336249554097029535212322581322789799900648198034993379397001115665086549"),
		Entry("a", "a", "91634880152443617534842621287039938041581081254914058002978601050179556493499"),
		Entry("abc", "abc", "84342368487090800366523834928142263660104883695016514377462985829716817089965"),
		Entry("the quick brown fox", "The quick brown fox jumps over the lazy dog", "97545829917274378450420493068633403634366097923610927113640139683520194405778"),
	)

	It("accumulates across multiple Update calls", func() {
		hs := New()
		hs.Update([]byte("Hello, "))
		hs.Update([]byte("world!"))
		d := hs.Finalize()

		want, _ := new(big.Int).SetString("22331814027392488307105736075480205742348666473969333634173732071459215699411", 10)
		Expect(digestAsInt(d)).To(Equal(want))
	})

	It("hashes 1000 repeated bytes crossing several blocks", func() {
		d := Sum256([]byte(strings.Repeat("a", 1000)))
		want, _ := new(big.Int).SetString("29820712876050628553104236154147713728727538950694247640693841099527019527843", 10)
		Expect(digestAsInt(d)).To(Equal(want))
	})

	It("produces a digest exactly Size bytes long", func() {
		d := Sum256([]byte("anything"))
		Expect(len(d)).To(Equal(Size))
	})
})

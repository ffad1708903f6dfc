package writer_test

import (
	"fmt"

	"github.com/flashstake/flashstake-deploy/writer"
	"github.com/onsi/gomega/gbytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PausableWriter", func() {
	var (
		output         *gbytes.Buffer
		pausableWriter *writer.PausableWriter
	)

	BeforeEach(func() {
		output = gbytes.NewBuffer()
		pausableWriter = writer.NewPausableWriter(output)
	})

	It("writes straight through when not paused", func() {
		fmt.Fprint(pausableWriter, "Deploying FlashStakeProtocol")

		Expect(output).To(gbytes.Say("Deploying FlashStakeProtocol"))
	})

	It("holds writes back while paused", func() {
		pausableWriter.Pause()

		n, err := fmt.Fprint(pausableWriter, "Waiting for transaction")

		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(len("Waiting for transaction")))
		Expect(output.Contents()).To(BeEmpty())
	})

	It("flushes held writes in order on resume", func() {
		pausableWriter.Pause()
		fmt.Fprint(pausableWriter, "first ")
		fmt.Fprint(pausableWriter, "second")

		Expect(pausableWriter.Resume()).To(Succeed())
		fmt.Fprint(pausableWriter, " third")

		Expect(string(output.Contents())).To(Equal("first second third"))
	})
})

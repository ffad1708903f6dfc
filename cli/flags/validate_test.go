package flags_test

import (
	"flag"

	"github.com/flashstake/flashstake-deploy/cli/flags"
	"github.com/onsi/gomega/gbytes"
	"github.com/urfave/cli"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Validate", func() {
	var (
		app    *cli.App
		set    *flag.FlagSet
		output *gbytes.Buffer
	)

	BeforeEach(func() {
		output = gbytes.NewBuffer()
		app = cli.NewApp()
		app.Name = "deploy"
		app.Writer = output

		set = flag.NewFlagSet("deploy", flag.ContinueOnError)
		set.String("network", "localhost", "")
		set.String("artifacts", "artifacts", "")
	})

	It("accepts flags that have values", func() {
		Expect(set.Parse(nil)).To(Succeed())

		Expect(flags.Validate([]string{"network", "artifacts"}, cli.NewContext(app, set, nil))).To(Succeed())
	})

	It("rejects an empty required flag and shows the help", func() {
		Expect(set.Parse([]string{"--artifacts", ""})).To(Succeed())

		err := flags.Validate([]string{"network", "artifacts"}, cli.NewContext(app, set, nil))

		Expect(err).To(MatchError(ContainSubstring("--artifacts flag is required.")))
		Expect(err.(*cli.ExitError).ExitCode()).To(Equal(1))
		Expect(output).To(gbytes.Say("USAGE"))
	})

	It("skips validation when help is requested", func() {
		Expect(set.Parse([]string{"--artifacts", "", "--", "--help"})).To(Succeed())

		Expect(flags.Validate([]string{"artifacts"}, cli.NewContext(app, set, nil))).To(Succeed())
	})
})

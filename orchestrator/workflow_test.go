package orchestrator_test

import (
	"context"
	"errors"

	"github.com/flashstake/flashstake-deploy/orchestrator"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingStep struct {
	name string
	err  error
	runs *[]string
}

func (s *recordingStep) Run(ctx context.Context, session *orchestrator.Session) error {
	*s.runs = append(*s.runs, s.name)
	return s.err
}

var _ = Describe("Workflow", func() {
	var (
		runs     []string
		workflow *orchestrator.Workflow
		first    *recordingStep
		second   *recordingStep
		onFail   *recordingStep
		last     *recordingStep
	)

	BeforeEach(func() {
		runs = nil
		first = &recordingStep{name: "first", runs: &runs}
		second = &recordingStep{name: "second", runs: &runs}
		onFail = &recordingStep{name: "on-fail", runs: &runs}
		last = &recordingStep{name: "last", runs: &runs}

		workflow = orchestrator.NewWorkflow()
		workflow.StartWith(first).OnSuccess(second).OnFailure(onFail)
		workflow.Add(second).OnSuccess(last).OnFailure(onFail)
		workflow.Add(onFail).OnSuccessOrFailure(last)
		workflow.Add(last)
	})

	It("follows the success path", func() {
		errs := workflow.Run(context.Background(), orchestrator.NewSession("unit"))

		Expect(errs).To(BeNil())
		Expect(runs).To(Equal([]string{"first", "second", "last"}))
	})

	It("follows the failure path and collects the error", func() {
		second.err = errors.New("second failed")

		errs := workflow.Run(context.Background(), orchestrator.NewSession("unit"))

		Expect(errs).To(ConsistOf(MatchError("second failed")))
		Expect(runs).To(Equal([]string{"first", "second", "on-fail", "last"}))
	})

	It("keeps going after a failing failure handler", func() {
		first.err = errors.New("first failed")
		onFail.err = errors.New("handler failed")

		errs := workflow.Run(context.Background(), orchestrator.NewSession("unit"))

		Expect(errs).To(HaveLen(2))
		Expect(runs).To(Equal([]string{"first", "on-fail", "last"}))
	})
})

var _ = Describe("Session", func() {
	It("starts idle with a run id", func() {
		session := orchestrator.NewSession("FlashStakeProtocol")

		Expect(session.State()).To(Equal(orchestrator.StateIdle))
		Expect(session.UnitName()).To(Equal("FlashStakeProtocol"))
		Expect(session.RunID()).NotTo(BeEmpty())
		Expect(orchestrator.NewSession("FlashStakeProtocol").RunID()).NotTo(Equal(session.RunID()))
	})
})

package orchestrator

import (
	"time"

	"github.com/google/uuid"
)

type State string

const (
	StateIdle       State = "idle"
	StateDeploying  State = "deploying"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
	StateTerminated State = "terminated"
)

type Session struct {
	unitName     string
	runID        string
	state        State
	factory      ContractFactory
	handle       DeploymentHandle
	confirmation Confirmation
	startTime    time.Time
}

func NewSession(unitName string) *Session {
	return &Session{
		unitName: unitName,
		runID:    uuid.New().String(),
		state:    StateIdle,
	}
}

func (session *Session) UnitName() string {
	return session.unitName
}

func (session *Session) RunID() string {
	return session.runID
}

func (session *Session) State() State {
	return session.state
}

func (session *Session) SetState(state State) {
	session.state = state
}

func (session *Session) CurrentFactory() ContractFactory {
	return session.factory
}

func (session *Session) SetCurrentFactory(factory ContractFactory) {
	session.factory = factory
}

func (session *Session) CurrentHandle() DeploymentHandle {
	return session.handle
}

func (session *Session) SetCurrentHandle(handle DeploymentHandle) {
	session.handle = handle
}

func (session *Session) Confirmation() Confirmation {
	return session.confirmation
}

func (session *Session) SetConfirmation(confirmation Confirmation) {
	session.confirmation = confirmation
}

func (session *Session) StartTime() time.Time {
	return session.startTime
}

func (session *Session) SetStartTime(startTime time.Time) {
	session.startTime = startTime
}

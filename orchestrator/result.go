package orchestrator

// DeploymentResult is produced once at the end of a run. Address is only
// set when Err is empty.
type DeploymentResult struct {
	UnitName string
	RunID    string
	Address  string
	Err      Error
}

func NewDeploymentResult(unitName, runID, address string, errs Error) DeploymentResult {
	if !errs.IsNil() {
		address = ""
	}
	return DeploymentResult{
		UnitName: unitName,
		RunID:    runID,
		Address:  address,
		Err:      errs,
	}
}

func (r DeploymentResult) Succeeded() bool {
	return r.Err.IsNil() && r.Address != ""
}

package orchestrator

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

type customError struct {
	error
}

type DeploymentError customError

func NewDeploymentError(cause error, message string, args ...interface{}) DeploymentError {
	if cause == nil {
		return DeploymentError{errors.Errorf(message, args...)}
	}
	return DeploymentError{errors.Wrapf(cause, message, args...)}
}

func (err DeploymentError) Cause() error {
	return errors.Cause(err.error)
}

func (err DeploymentError) Format(s fmt.State, verb rune) {
	if formatter, ok := err.error.(fmt.Formatter); ok {
		formatter.Format(s, verb)
		return
	}
	fmt.Fprint(s, err.error.Error())
}

func NewError(errs ...error) Error {
	if len(errs) == 0 {
		return nil
	}
	return Error(errs)
}

type Error []error

func (err Error) Error() string {
	return err.PrettyError(false)
}

func (err Error) PrettyError(includeStacktrace bool) string {
	if err.IsNil() {
		return ""
	}
	if len(err) == 1 && !includeStacktrace {
		return err[0].Error()
	}

	var buffer = bytes.NewBufferString("")

	fmt.Fprintf(buffer, "%d error%s occurred:\n", len(err), err.getPostFix())
	for index, err := range err {
		fmt.Fprintf(buffer, "error %d:\n", index+1)
		if includeStacktrace {
			fmt.Fprintf(buffer, "%+v\n", err)
		} else {
			fmt.Fprintf(buffer, "%+v\n", err.Error())
		}
	}
	return buffer.String()
}

func (err Error) getPostFix() string {
	errorPostfix := ""
	if len(err) > 1 {
		errorPostfix = "s"
	}
	return errorPostfix
}

func (err Error) IsNil() bool {
	return len(err) == 0
}

func BuildExitCode(errs Error) int {
	if errs.IsNil() {
		return 0
	}
	return 1
}

// ProcessError returns the exit code, the message to show the user and,
// when there is one, the message including stack traces.
func ProcessError(errs Error) (int, string, string) {
	if errs.IsNil() {
		return 0, "", ""
	}

	return BuildExitCode(errs), errs.Error(), errs.PrettyError(true)
}

package command

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/flashstake/flashstake-deploy/factory"
	"github.com/flashstake/flashstake-deploy/orchestrator"
	"github.com/mgutz/ansi"
	"github.com/urfave/cli"
)

func trapSigint() {
	sigintChan := make(chan os.Signal, 1)
	signal.Notify(sigintChan, os.Interrupt)

	go func() {
		for range sigintChan {
			stdinReader := bufio.NewReader(os.Stdin)
			factory.ApplicationLoggerStderr.Pause()
			if confirmCancel(stdinReader, os.Stderr) {
				os.Exit(1)
			}
			factory.ApplicationLoggerStderr.Resume()
		}
	}()
}

func confirmCancel(stdin *bufio.Reader, out io.Writer) bool {
	fmt.Fprintln(out, "\n"+deploySigintQuestion)
	input, err := stdin.ReadString('\n')
	if err != nil {
		fmt.Fprintln(out, "\n"+deployStdinErrorMessage)
		return false
	}
	if strings.ToLower(strings.TrimSpace(input)) == "yes" {
		fmt.Fprintln(out, deployCancelledNotice)
		return true
	}
	return false
}

func processError(err orchestrator.Error, debug bool) error {
	errorCode, errorMessage, errorWithStackTrace := orchestrator.ProcessError(err)
	if errorCode == 0 {
		return nil
	}

	if debug {
		errorMessage = errorMessage + "\n" + errorWithStackTrace
	}
	return cli.NewExitError(ansi.Color(errorMessage, "red"), errorCode)
}

func redCliError(err error) *cli.ExitError {
	return cli.NewExitError(ansi.Color(err.Error(), "red"), 1)
}

package factory

import (
	"io"
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/flashstake/flashstake-deploy/writer"
)

var ApplicationLoggerStderr = writer.NewPausableWriter(os.Stderr)

func BuildLogger(debug bool) boshlog.Logger {
	return BuildLoggerWithCustomWriter(ApplicationLoggerStderr, debug)
}

func BuildLoggerWithCustomWriter(w io.Writer, debug bool) boshlog.Logger {
	if debug {
		return boshlog.NewWriterLogger(boshlog.LevelDebug, w)
	}
	return boshlog.NewWriterLogger(boshlog.LevelInfo, w)
}

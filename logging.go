package gpsfixgeojson

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogging configures the process-wide logger. Unknown levels fall
// back to info.
func InitLogging(level string) {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

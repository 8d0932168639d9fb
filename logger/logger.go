package logger

import (
	"os"

	"github.com/op/go-logging"
)

const format = `%{time:2006-01-02 15:04:05} %{level:.5s} [%{module}] %{message}`

// Init parses the level name (DEBUG, INFO, WARNING, ERROR...) and installs a
// leveled stdout backend for every go-logging module.
func Init(level string) error {
	baseBackend := logging.NewLogBackend(os.Stdout, "", 0)
	backendFormatter := logging.NewBackendFormatter(baseBackend, logging.MustStringFormatter(format))

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	levelCode, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(levelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var once sync.Once

// Init configures the global zerolog logger. Output goes to stdout and,
// when logFilePath is set, to that file as well. Safe to call more than once.
func Init(environment, logFilePath string) {
	once.Do(func() {
		writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}}

		if logFilePath != "" {
			file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
			if err != nil {
				// The logger is not ready yet, so report directly to stderr
				os.Stderr.WriteString("failed to open log file: " + err.Error() + "\n")
			} else {
				writers = append(writers, file)
			}
		}

		l := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
		if environment == "development" {
			l = l.Level(zerolog.DebugLevel)
		} else {
			l = l.Level(zerolog.InfoLevel)
		}
		log.Logger = l
	})
}

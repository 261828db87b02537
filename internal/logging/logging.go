package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger = logrus.New()
var once sync.Once

// Init configures the global logger. When logFile is non-empty, output is
// rotated via lumberjack; otherwise it stays on stderr.
func Init(logFile string) {
	once.Do(func() {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		Logger.SetLevel(logrus.InfoLevel)

		if logFile != "" {
			Logger.SetOutput(&lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			})
		}
	})
}

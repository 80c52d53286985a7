// server/internal/logger/logger.go
package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	appLogger *logrus.Logger
	once      sync.Once
)

// GetAppLogger trả về logger dùng chung của ứng dụng.
// Mức log điều khiển qua biến môi trường LOG_LEVEL (mặc định info).
func GetAppLogger() *logrus.Logger {
	once.Do(func() {
		appLogger = logrus.New()
		appLogger.SetOutput(os.Stdout)
		appLogger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})

		level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
		if err != nil {
			level = logrus.InfoLevel
		}
		appLogger.SetLevel(level)
	})
	return appLogger
}

package commonGo

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/multiversx/mx-chain-logger-go/file"
)

// AttachFileLogger attaches, if required, a log file
func AttachFileLogger(
	defaultLogsPath string,
	logFilePrefix string,
	saveLogFile bool,
	workingDir string) (FileLoggingHandler, error) {
	if !saveLogFile {
		return nil, nil
	}

	argsFileLogging := file.ArgsFileLogging{
		WorkingDir:      workingDir,
		DefaultLogsPath: defaultLogsPath,
		LogFilePrefix:   logFilePrefix,
	}
	logFile, err := file.NewFileLogging(argsFileLogging)
	if err != nil {
		return nil, fmt.Errorf("%w creating a log file", err)
	}

	return logFile, nil
}

// ReadEnvFile will read the file contents in the provided map. All keys of the
// map must resolve to non-empty values.
func ReadEnvFile(envFile string, m map[string]string) error {
	err := godotenv.Load(envFile)
	if err != nil {
		return err
	}

	for k := range m {
		val := os.Getenv(k)
		if len(val) == 0 {
			return fmt.Errorf("%s is not set in the .env file", k)
		}

		m[k] = val
	}

	return nil
}

// CronJobStarter starts a go routine that calls the provided handler once
// immediately and then periodically, until the context is done
func CronJobStarter(ctx context.Context, handler func(ctx context.Context), timeToCall time.Duration) {
	go func() {
		timer := time.NewTimer(timeToCall)
		defer timer.Stop()

		handler(ctx)

		for {
			select {
			case <-timer.C:
				handler(ctx)
				timer.Reset(timeToCall)
			case <-ctx.Done():
				return
			}
		}
	}()
}

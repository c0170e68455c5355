package system

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Get qiskit directory ($HOME/.qiskit)
func GetQiskitDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".qiskit"), nil
}

// Create directory if not exist
func CreateDirIfNotExist(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetRollingLogWriter returns a size-rotated writer for logPath. A relative
// path is placed under the qiskit directory.
func GetRollingLogWriter(logPath string) (io.WriteCloser, error) {
	if !filepath.IsAbs(logPath) {
		qiskitDir, err := GetQiskitDir()
		if err != nil {
			return nil, err
		}
		logPath = filepath.Join(qiskitDir, logPath)
	}
	if err := CreateDirIfNotExist(filepath.Dir(logPath)); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}, nil
}

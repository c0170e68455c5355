package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cpkurotori/qiskit-ibm-runtime/internal/utils/system"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Root struct {
	// Flags
	ConfigFile   string
	OutputFormat OutputFormat
	Debug        bool
	LogFile      string

	// Runtime values
	Log *slog.Logger `json:"-"`
}

func (c *Root) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&c.ConfigFile, "config", "", "config file (default is $HOME/.qiskit/config.yaml)")
	cmd.PersistentFlags().VarP(&c.OutputFormat, "output", "o", "output format (json|yaml)")
	cmd.PersistentFlags().BoolVar(&c.Debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&c.LogFile, "log-file", "", "write logs to a rotated file instead of stderr (relative paths go under $HOME/.qiskit)")
}

func (c *Root) Init() {
	cobra.CheckErr(c.init())
}

func (c *Root) init() error {
	if c.ConfigFile != "" {
		viper.SetConfigFile(c.ConfigFile)
	} else {
		qiskitDir, err := system.GetQiskitDir()
		if err != nil {
			return err
		}

		viper.AddConfigPath(qiskitDir)
		viper.SetConfigName("config") // Doesn't include extension.
		viper.SetConfigType("yaml")   // File name will be "config.yaml".
	}

	viper.SetEnvPrefix("qiskit_ibm")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional since the credentials can be set by env
		// var instead.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	if !c.Debug {
		c.Debug = viper.GetBool("debug")
	}
	return c.initLogger()
}

func (c *Root) initLogger() error {
	var w io.Writer = os.Stderr
	if c.LogFile != "" {
		lw, err := system.GetRollingLogWriter(filepath.Clean(c.LogFile))
		if err != nil {
			return err
		}
		w = lw
	}
	logLevel := slog.LevelInfo
	if c.Debug {
		logLevel = slog.LevelDebug
	}
	c.Log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
	return nil
}

// GetLog returns the configured logger, or one that discards everything if
// Init has not run.
func (c *Root) GetLog() *slog.Logger {
	if c.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Log
}

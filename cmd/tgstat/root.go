package tgstat

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/whoamihappyhacking/tgstat/internal/tgstat/conf"
)

var (
	configFile string
	debug      bool

	appConf *conf.Config
)

var rootCmd = &cobra.Command{
	Use:   "tgstat",
	Short: "Monthly statistics over Telegram chat exports",
	Long:  "tgstat aggregates an exported Telegram chat into per-month message, photo, keyword and emoji statistics and serves them over HTTP.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initLog()
		var err error
		appConf, err = conf.Load(configFile)
		return err
	},
}

func initLog() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

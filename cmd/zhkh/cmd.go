package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/internal"
)

var (
	log *logrus.Logger

	cfgFile     string
	showVersion bool
	dumpConfig  bool
	generateKey bool
)

var cmd = &cobra.Command{
	Use:   "zhkh",
	Short: "AI-помощник ЖКХ: маскирование персональных данных, генерация ответов жителям, правовые консультации и разбор предписаний",
	Run:   func(cmd *cobra.Command, args []string) { run() },
}

func init() {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVarP(&dumpConfig, "dump-config", "d", false, "dump config")
	cmd.PersistentFlags().
		BoolVarP(&generateKey, "generate-token", "g", false, "generate a new JWT token")

	cmd.AddCommand(healthCmd)
	cmd.AddCommand(maskCmd)
	cmd.AddCommand(generateCmd)
	cmd.AddCommand(legalCmd)
	cmd.AddCommand(documentsCmd)
	cmd.AddCommand(analyzeCmd)
}

// Execute executes the root cobra command.
func Execute() {
	log = internal.GetLogger()
	log.SetLevel(logrus.InfoLevel)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var RootCmd = &cobra.Command{
	Use:   "rescale",
	Short: "feature rescaling demo",
	Long:  "demonstrates the outlier sensitivity of min-max normalization and z-score standardization",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("output-dir", "output", "directory for rendered charts and exported tables")

	RootCmd.PersistentFlags().Int("samples", 100, "number of random rows to draw")
	RootCmd.PersistentFlags().Int64("seed", 0, "random seed, 0 picks one from the clock")
	RootCmd.PersistentFlags().Int("axis1-bound", 40, "exclusive upper bound of the axis1 draws")
	RootCmd.PersistentFlags().Int("axis2-bound", 5, "exclusive upper bound of the axis2 draws")
	RootCmd.PersistentFlags().Float64("outlier-axis1", 80, "axis1 value of the injected outlier row")
	RootCmd.PersistentFlags().Float64("outlier-axis2", 3, "axis2 value of the injected outlier row")
}

func Execute() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()
	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}

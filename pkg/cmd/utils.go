package cmd

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/c9s/rescale/pkg/dataset"
)

// buildTable assembles the demo table from the generation flags: samples
// random rows plus one injected outlier row.
func buildTable() *dataset.Table {
	seed := viper.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("using random seed %d", seed)

	src := rand.New(rand.NewSource(seed))
	t := dataset.Generate(src,
		viper.GetInt("samples"),
		viper.GetInt("axis1-bound"),
		viper.GetInt("axis2-bound"))

	return t.WithRow(
		viper.GetFloat64("outlier-axis1"),
		viper.GetFloat64("outlier-axis2"))
}

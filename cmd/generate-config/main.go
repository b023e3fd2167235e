// Command generate-config prints a config.yaml holding every setting at its default value
//
//	generate-config > config.yaml
package main

import (
	"flag"
	"io"
	"os"

	"blackjack-console/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var output = flag.String("o", "", "write to this file instead of stdout")

func main() {
	flag.Parse()

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			logrus.WithError(err).Fatal("could not create output file")
		}
		defer f.Close()

		w = f
	}

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not encode config")
	}

	if err := enc.Close(); err != nil {
		logrus.WithError(err).Fatal("could not flush config")
	}
}

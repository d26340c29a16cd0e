//
// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// This is a command line utility which simulates a production lot, inspects a
// random sample of it and prints whether the lot is approved.
// Usage example:
// go run ./cmd/lotqc --descriptive_chart_file=descriptive.png --conformity_chart_file=conformity.png
// With a configuration file overriding some of the defaults:
// go run ./cmd/lotqc --config=lot.yaml --seed=7 --theme=default
package main

import (
	"flag"
	"os"

	log "github.com/golang/glog"
	"github.com/google/lot-quality-control/lot"
	"github.com/google/lot-quality-control/plots"
	"github.com/google/lot-quality-control/report"
)

var (
	configFile = flag.String("config", "", "Optional YAML file with the lot parameters. Absent keys keep their default values.")
	seed       = flag.Int64("seed", 42, "Seed of the random source. Overrides the config file when set. "+
		"A negative seed uses a secure, unreproducible source.")
	theme = flag.String("theme", "seaborn", "Chart theme: \"seaborn\" or \"default\". "+
		"Unknown themes fall back to \"default\".")
	descriptiveChartFile = flag.String("descriptive_chart_file", "descriptive.png",
		"Output image for the histograms, box plots and Q-Q plots. The format follows the extension (png, jpg, svg, pdf).")
	conformityChartFile = flag.String("conformity_chart_file", "conformity.png",
		"Output image for the conformity rates and the weight vs dimension scatter.")
	noCharts = flag.Bool("no_charts", false, "Skip writing the charts.")
)

// isSet reports whether the named flag was given on the command line.
func isSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func main() {
	flag.Parse()

	log.Infof("lotqc was run with arguments: config = %q, seed = %d, theme = %q,"+
		" descriptiveChartFile = %q, conformityChartFile = %q, noCharts = %t",
		*configFile, *seed, *theme, *descriptiveChartFile, *conformityChartFile, *noCharts)

	cfg := lot.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = lot.LoadConfig(*configFile); err != nil {
			log.Exitf("Couldn't load the configuration, err = %v", err)
		}
	}
	if isSet("seed") || *configFile == "" {
		cfg.Seed = *seed
	}

	a, err := lot.Run(cfg)
	if err != nil {
		log.Exitf("Couldn't analyse the lot, err = %v", err)
	}
	if err := report.Write(os.Stdout, a); err != nil {
		log.Exitf("Couldn't print the report, err = %v", err)
	}

	if !*noCharts {
		if err := writeCharts(a, plots.LookupTheme(*theme)); err != nil {
			log.Exitf("Couldn't write the charts, err = %v", err)
		}
	}
	log.Infof("Successfully finished analysing the lot: %s", a.Decision.Label())
}

func writeCharts(a *lot.Analysis, t plots.Theme) error {
	desc, err := a.DescriptiveFigure(t)
	if err != nil {
		return err
	}
	if err := desc.Save(*descriptiveChartFile); err != nil {
		return err
	}
	conf, err := a.ConformityFigure(t)
	if err != nil {
		return err
	}
	return conf.Save(*conformityChartFile)
}

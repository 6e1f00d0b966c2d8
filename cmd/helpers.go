// Copyright 2020 Fugue, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fugue/runtask/config"
	"github.com/fugue/runtask/envsub"
	"github.com/fugue/runtask/format"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func fatal(err error) {
	fmt.Fprintln(os.Stderr, format.Red(err.Error()))
	os.Exit(1)
}

type runtaskOptions struct {
	Region    string
	Cluster   string
	Debug     bool
	LogFormat string
}

func getRuntaskOptions() runtaskOptions {
	return runtaskOptions{
		Region:    viper.GetString("region"),
		Cluster:   viper.GetString("cluster"),
		Debug:     viper.GetBool("debug"),
		LogFormat: viper.GetString("log-format"),
	}
}

func newLogger(opts runtaskOptions, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	if opts.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if opts.Debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// getRawInputs reads the run inputs and expands environment variable
// references in them
func getRawInputs(lookup envsub.Lookup) (config.Raw, error) {
	raw := config.Raw{
		TaskDefinition:          viper.GetString("task-definition"),
		TaskDefinitionParameter: viper.GetString("task-definition-parameter"),
		Cluster:                 viper.GetString("cluster"),
		Subnets:                 viper.GetString("subnets"),
		SecurityGroups:          viper.GetString("security-groups"),
		WaitForFinish:           viper.GetString("wait-for-finish"),
		WaitTimeout:             viper.GetString("wait-timeout"),
	}
	err := envsub.ExpandAll(map[string]*string{
		"task-definition":           &raw.TaskDefinition,
		"task-definition-parameter": &raw.TaskDefinitionParameter,
		"cluster":                   &raw.Cluster,
		"subnets":                   &raw.Subnets,
		"security-groups":           &raw.SecurityGroups,
		"wait-for-finish":           &raw.WaitForFinish,
		"wait-timeout":              &raw.WaitTimeout,
	}, lookup)
	return raw, err
}

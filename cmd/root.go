// Copyright (c) 2021-2024 SigScalr, Inc.
//
// This file is part of SigLens Observability Solution
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var count uint32
var seed uint64
var runs int
var generatorType string
var format string
var verify bool
var verbose bool
var logPrefix string

var rootCmd = &cobra.Command{
	Use:   "ssobench",
	Short: "small-string optimization benchmark",
	Long:  `Measures how the small-string optimization changes push_back and sort cost for large sets of short strings`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		runBenchmark()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func configureLogging() {
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	// stdout carries the report stream, so logs stay on stderr unless
	// a log prefix redirects them to a rotated file.
	if logPrefix == "" {
		log.SetOutput(os.Stderr)
		return
	}

	err := os.MkdirAll(logPrefix, 0764)
	if err != nil {
		log.Fatalf("failed to make log directory at=%v, err=%v", logPrefix, err)
	}
	logOut := logPrefix + "ssobench.log"
	log.SetOutput(&lumberjack.Logger{
		Filename:   logOut,
		MaxSize:    100,
		MaxBackups: 30,
		MaxAge:     1, //days
		Compress:   true,
	})
	log.Infof("----- ssobench logging to %s ----- \n", logOut)
}

func init() {
	rootCmd.PersistentFlags().Uint32Var(&count, "count", 200_000, "number of strings in the dataset")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 64, "shuffle seed")
	rootCmd.PersistentFlags().IntVar(&runs, "runs", 3, "repetitions per subject")
	rootCmd.PersistentFlags().StringVarP(&generatorType, "generator", "g", "sequential",
		"dataset generator type (sequential, words)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&verify, "verify", false,
		"check that all subjects sort to identical content")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logPrefix, "logPrefix", "",
		"write rotated logs under this path prefix instead of stdout")
}

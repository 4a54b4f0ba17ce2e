// Package main is the joins command, which joins two files of records
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/JeffEnglish/joins/internal/config"
	"github.com/JeffEnglish/joins/internal/log"
	"github.com/JeffEnglish/joins/internal/runner"
)

var appName = "joins"

var gitTag, gitCommit, gitBranch string

func main() {
	var (
		showVersion = kingpin.Flag("version", "show version and exit").Default().Bool()
		logLevel    = kingpin.Flag("log-level", "set log level: debug, info, warn, error").Default("info").Envar("LOG_LEVEL").String()
		configFile  = kingpin.Flag("config-file", "path to job file").Default("").Envar("JOINS_CONFIG_FILE").String()
		leftPath    = kingpin.Flag("left", "path to the left records").String()
		rightPath   = kingpin.Flag("right", "path to the right records").String()
		leftKey     = kingpin.Flag("left-key", "key field of the left records").String()
		rightKey    = kingpin.Flag("right-key", "key field of the right records").String()
		kind        = kingpin.Flag("kind", "join kind: inner, outer, left, right, leftExcluding, rightExcluding, outerExcluding").String()
		keys        = kingpin.Flag("keys", "key comparison: strict, loose").Envar("JOINS_KEYS").String()
		where       = kingpin.Flag("where", "CEL expression over row that joined records must satisfy").String()
		fields      = kingpin.Flag("fields", "comma separated fields to keep").String()
		format      = kingpin.Flag("format", "output format: json, yaml, table").Envar("JOINS_FORMAT").String()
	)
	kingpin.Parse()
	log.SetLevel(*logLevel)
	log.SetApplication(appName)
	if *showVersion {
		fmt.Printf("%s %s %s-%s\n", appName, gitTag, gitCommit, gitBranch)
		os.Exit(0)
	}

	job, err := config.NewJob(*configFile)
	if err != nil {
		log.Errorln("create job failed: ", err)
		os.Exit(1)
	}

	// flags override the job file
	job.Apply(config.Flags{
		LeftPath:  *leftPath,
		RightPath: *rightPath,
		LeftKey:   *leftKey,
		RightKey:  *rightKey,
		Kind:      *kind,
		Keys:      *keys,
		Where:     *where,
		Fields:    *fields,
		Format:    *format,
	})

	if err := job.Validate(); err != nil {
		log.Errorln("validate job failed: ", err)
		os.Exit(1)
	}

	if err := runner.Run(job, os.Stdout); err != nil {
		log.Errorln("join failed: ", err)
		os.Exit(1)
	}
}


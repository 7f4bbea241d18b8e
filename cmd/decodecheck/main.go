package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/reoring/decoded"
	"github.com/reoring/decoded/source"
)

// errCheckFailed marks a document that decoded with failures; the report has
// already been written.
var errCheckFailed = errors.New("document failed field checks")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		if !errors.Is(err, errCheckFailed) {
			logrus.Errorf("decodecheck: %v", err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps a Run error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "decodecheck"
	app.Usage = "check a JSON or YAML document against a field list and report every failure"
	app.ArgsUsage = "FILE"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "format,f",
			Usage:  "input format: auto, json or yaml",
			Value:  "auto",
			EnvVar: "DECODECHECK_FORMAT",
		},
		cli.StringFlag{
			Name:   "output,o",
			Usage:  "report format: text or json",
			Value:  "text",
			EnvVar: "DECODECHECK_OUTPUT",
		},
		cli.StringSliceFlag{
			Name:  "field",
			Usage: "field as name:type (string, int, float, bool, any); append ? for optional",
		},
		cli.BoolFlag{
			Name:  "verbose,v",
			Usage: "enable debug logs",
		},
	}
	app.Before = initLogging
	app.Action = run
	return app
}

func initLogging(c *cli.Context) error {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if c.Bool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func run(c *cli.Context) error {
	file := c.Args().First()
	if file == "" {
		return errors.New("missing FILE argument")
	}
	specs, err := parseFieldSpecs(c.StringSlice("field"))
	if err != nil {
		return err
	}
	format := resolveFormat(c.String("format"), file)
	log := logrus.WithFields(logrus.Fields{"file": file, "format": format})

	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	root, err := readTree(format, data)
	if err != nil {
		return err
	}
	log.WithField("fields", len(specs)).Debug("decoding document")

	result := checkFields(root, specs)
	if err := writeReport(c.App.Writer, c.String("output"), file, result); err != nil {
		return err
	}
	if e, failed := result.ErrorValue(); failed {
		log.WithField("failures", len(decoded.Leaves(e))).Error("document failed field checks")
		return errCheckFailed
	}
	log.Debug("document ok")
	return nil
}

func resolveFormat(format, file string) string {
	if format != "auto" {
		return format
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func readTree(format string, data []byte) (any, error) {
	switch format {
	case "json":
		return source.JSONBytes(data)
	case "yaml":
		return source.YAMLBytes(data)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func writeReport(w io.Writer, output, file string, result decoded.Decoded[map[string]any]) error {
	switch output {
	case "text":
		_, err := fmt.Fprintln(w, result.String())
		return err
	case "json":
		b, err := buildReport(file, result).JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	default:
		return fmt.Errorf("unknown output %q", output)
	}
}

// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package beaglethin

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"reflect"
	"strings"

	"git.arvados.org/arvados.git/lib/cmd"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return "-" + fld.Tag.Get("flag")
	})
	return v
}()

type thinConfig struct {
	Input    string `flag:"i" validate:"required"`
	Output   string `flag:"o" validate:"required"`
	Distance int64  `flag:"d" validate:"gte=0"`
}

type thincmd struct{}

func (tc *thincmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "version", "-version", "--version":
			return cmd.Version.RunCommand(prog, args[1:], stdin, stdout, stderr)
		}
	}
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	var cfg thinConfig
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.Input, "i", "", "input beagle `file`, or \"-\" for stdin (*.gz is decompressed)")
	flags.Int64Var(&cfg.Distance, "d", 0, "drop markers within `distance` of the last kept marker on the same chromosome")
	flags.StringVar(&cfg.Output, "o", "-", "output `file`, or \"-\" for stdout (*.gz is compressed)")
	flags.Usage = func() {
		fmt.Fprintf(stdout, "usage: %s -i <input beagle file, or '-' for stdin> -d <distance> [-o <output file>]\n", prog)
		flags.SetOutput(stdout)
		flags.PrintDefaults()
		flags.SetOutput(stderr)
	}
	if len(args) == 0 {
		flags.Usage()
		return 0
	}
	// The flag package has already reported parse errors and
	// printed usage.
	if perr := flags.Parse(args); perr == flag.ErrHelp {
		return 0
	} else if perr != nil {
		return 2
	}
	err = checkConfig(flags, &cfg)
	if err != nil {
		flags.Usage()
		return 2
	}

	logger := log.New()
	logger.Out = stderr
	logger.Formatter = log.StandardLogger().Formatter
	logger.Infof("thinning %s with distance %d", cfg.Input, cfg.Distance)

	input, err := zopen(cfg.Input, stdin)
	if err != nil {
		err = &IOError{Op: "open input", Err: err}
		return 1
	}
	defer input.Close()
	output, err := zcreate(cfg.Output, stdout)
	if err != nil {
		err = &IOError{Op: "open output", Err: err}
		return 1
	}
	defer output.Close()

	stats, err := Thin(input, output, cfg.Distance)
	if err != nil {
		return 1
	}
	err = output.Close()
	if err != nil {
		err = &IOError{Op: "close output", Err: err}
		return 1
	}
	err = input.Close()
	if err != nil {
		err = &IOError{Op: "close input", Err: err}
		return 1
	}
	fields := log.Fields{
		"rows":        stats.Rows,
		"kept":        stats.Kept,
		"chromosomes": stats.Chromosomes,
	}
	if stats.Kept > 0 {
		fields["last"] = stats.Last.String()
	}
	logger.WithFields(fields).Info("done")
	return 0
}

// checkConfig returns a *UsageError if a required flag was not given,
// positional arguments were given, or a flag value is out of range.
func checkConfig(flags *flag.FlagSet, cfg *thinConfig) error {
	if flags.NArg() > 0 {
		return &UsageError{Reason: fmt.Sprintf("unexpected argument %q", flags.Arg(0))}
	}
	seen := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	for _, name := range []string{"i", "d"} {
		if !seen[name] {
			return &UsageError{Reason: "missing required flag -" + name}
		}
	}
	err := validate.Struct(cfg)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		var reasons []string
		for _, fe := range verrs {
			reason := fe.Field() + " failed " + fe.Tag()
			if fe.Param() != "" {
				reason += "=" + fe.Param()
			}
			reasons = append(reasons, fmt.Sprintf("%s (got %q)", reason, fmt.Sprint(fe.Value())))
		}
		return &UsageError{Reason: strings.Join(reasons, ", ")}
	} else if err != nil {
		return err
	}
	return nil
}

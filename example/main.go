// Package main demonstrates usage of the scg-errbox packages.
//
// It parses a list of integers, erases the failures into handles, logs them
// with their cause chains, and recovers the concrete parse failure to retry
// overflowing inputs as floats.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	conf "github.com/heetch/confita"
	"github.com/heetch/confita/backend/env"
	"github.com/heetch/confita/backend/flags"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	errbox "github.com/next-trace/scg-errbox/error"
	"github.com/next-trace/scg-errbox/logging"
	"github.com/next-trace/scg-errbox/primitive"
)

type Config struct {
	// logrus logging levels: panic, fatal, error, warn / warning, info, debug, trace
	LogLevel string `config:"log_level,short=l,description=Logging level: panic fatal error warn info debug trace"`
	// supported logging formats: text, json
	LogFormat string `config:"log_format,description=Logging format: text json"`
	// Integers to parse
	Inputs []string `config:"inputs,short=i,description=Comma separated integers to parse"`
}

// default config values
var cfg = Config{
	LogLevel:  logging.DefaultLevel.String(),
	LogFormat: logging.DefaultFormat,
	Inputs:    []string{"42", "x7", "99999999999999999999", ""},
}

func main() {
	loader := conf.NewLoader(
		env.NewBackend(),
		flags.NewBackend(),
	)
	if err := loader.Load(context.Background(), &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Initialize(os.Stdout, cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "logging init failed: %v\n", err)
		os.Exit(1)
	}

	if len(cfg.Inputs) == 0 {
		// a foreign error from a lower layer, adapted on the way up
		err := pkgerrors.Wrap(io.ErrUnexpectedEOF, "read inputs")
		logging.LogError(nil, errbox.Ensure(err))

		return
	}

	for _, in := range cfg.Inputs {
		v, err := parseRecord(in)
		if err == nil {
			log.WithField("input", in).Infof("parsed %d", v)
			continue
		}

		h := errbox.Ensure(err)
		logging.LogError(log.WithField("input", in), h)

		// targeted recovery: only overflowing integers are retried
		if pe, ok := errbox.ValueAs[primitive.ParseIntError](h.Cause()); ok && pe.Kind == primitive.IntPosOverflow {
			if f, ferr := primitive.ParseFloat(pe.Input, 64); ferr == nil {
				log.WithField("input", in).Infof("parsed as float %g", f)
			}
		}
	}
}

func parseRecord(s string) (int64, error) {
	v, err := primitive.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errbox.Wrap(errbox.Adapt(err), "invalid record", errbox.WithDetail(fmt.Sprintf("record %q", s)))
	}

	return v, nil
}

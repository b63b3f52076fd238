// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05.000 Z07:00"

type utcFormatter struct {
	logrus.Formatter
}

func (f utcFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Time = entry.Time.UTC()
	return f.Formatter.Format(entry)
}

func newLogger(w io.Writer, level string, json bool) (*logrus.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var line logrus.Formatter
	if json {
		line = &logrus.JSONFormatter{TimestampFormat: timestampFormat}
	} else {
		line = &logrus.TextFormatter{
			TimestampFormat:  timestampFormat,
			FullTimestamp:    true,
			DisableColors:    true,
			QuoteEmptyFields: true,
		}
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(utcFormatter{line})

	return log, nil
}

// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package beaglethin

import (
	"os"

	"git.arvados.org/arvados.git/lib/cmd"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var handler cmd.Handler = &thincmd{}

func Main() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		logrus.StandardLogger().Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	}
	os.Exit(handler.RunCommand(os.Args[0], os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

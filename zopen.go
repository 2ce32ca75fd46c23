// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package beaglethin

import (
	"bufio"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// open returns the named beagle file, or stdin if fnm is "-".
func open(fnm string, stdin io.Reader) (io.ReadCloser, error) {
	if fnm == "-" {
		return ioutil.NopCloser(stdin), nil
	}
	return os.Open(fnm)
}

// zopen is like open, but decompresses the input if fnm ends with
// ".gz" (ANGSD writes *.beagle.gz). Stdin is never decompressed.
func zopen(fnm string, stdin io.Reader) (io.ReadCloser, error) {
	f, err := open(fnm, stdin)
	if err != nil || fnm == "-" || !strings.HasSuffix(fnm, ".gz") {
		return f, err
	}
	rdr, err := pgzip.NewReader(bufio.NewReaderSize(f, 4*1024*1024))
	if err != nil {
		f.Close()
		return nil, &IOError{Op: "decompress " + fnm, Err: err}
	}
	return gzipr{rdr, f}, nil
}

// gzipr wraps a ReadCloser and a Closer, presenting a single Close()
// method that closes both wrapped objects.
type gzipr struct {
	io.ReadCloser
	io.Closer
}

func (gr gzipr) Close() error {
	e1 := gr.ReadCloser.Close()
	e2 := gr.Closer.Close()
	if e1 != nil {
		return e1
	}
	return e2
}

// zcreate returns a writer for the given file, or for stdout if fnm
// is "-", compressing the output if fnm ends with ".gz". Closing the
// returned writer flushes the compressor before closing the file.
func zcreate(fnm string, stdout io.Writer) (io.WriteCloser, error) {
	if fnm == "-" {
		return nopCloser{stdout}, nil
	}
	f, err := os.OpenFile(fnm, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil || !strings.HasSuffix(fnm, ".gz") {
		return f, err
	}
	return gzipw{pgzip.NewWriter(f), f}, nil
}

type gzipw struct {
	*pgzip.Writer
	f *os.File
}

func (gw gzipw) Close() error {
	e1 := gw.Writer.Close()
	e2 := gw.f.Close()
	if e1 != nil {
		return e1
	}
	return e2
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package beaglethin

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"unicode"
)

// Thinner decides which markers to keep. A marker is kept if it is
// the first one seen, it is on a different chromosome than the last
// kept marker, or it is more than Distance past the last kept
// marker.
type Thinner struct {
	Distance int64

	last    Marker
	started bool
}

// Keep reports whether m should be retained, and if so, records it
// as the last kept marker.
func (t *Thinner) Keep(m Marker) bool {
	if t.started &&
		m.Chromosome == t.last.Chromosome &&
		!gapExceeds(m.Position, t.last.Position, t.Distance) {
		return false
	}
	t.last = m
	t.started = true
	return true
}

// gapExceeds reports whether pos-last > distance, without
// overflowing when pos and last are far apart.
func gapExceeds(pos, last, distance int64) bool {
	if pos > last {
		// pos-last fits in a uint64 even when it overflows int64.
		return distance < 0 || uint64(pos-last) > uint64(distance)
	}
	if distance >= 0 {
		return false
	}
	// Both sides are non-positive: compare magnitudes instead.
	return uint64(last-pos) < uint64(-distance)
}

// ThinStats summarizes a completed (or aborted) scan.
type ThinStats struct {
	Rows        int // data rows read, not counting the header
	Kept        int
	Chromosomes int    // chromosome runs among kept rows
	Last        Marker // last kept marker, if Kept > 0
}

// Thin copies the header line from r to w, followed by the data rows
// selected by a Thinner with the given distance. Rows are written
// with trailing whitespace removed and a single "\n" terminator.
//
// The first malformed or empty data row stops the scan. Rows already
// written are flushed to w before the error is returned.
func Thin(r io.Reader, w io.Writer, distance int64) (ThinStats, error) {
	var stats ThinStats
	t := Thinner{Distance: distance}
	rdr := bufio.NewReaderSize(r, 1<<20)
	bufw := bufio.NewWriterSize(w, 1<<20)

	emit := func(line []byte) error {
		if _, err := bufw.Write(line); err != nil {
			return &IOError{Op: "write", Err: err}
		}
		if err := bufw.WriteByte('\n'); err != nil {
			return &IOError{Op: "write", Err: err}
		}
		return nil
	}
	fail := func(err error) (ThinStats, error) {
		bufw.Flush()
		return stats, err
	}

	for lineno := 1; ; lineno++ {
		line, rerr := rdr.ReadBytes('\n')
		if rerr != nil && rerr != io.EOF {
			return fail(&IOError{Op: "read", Err: rerr})
		}
		if len(line) == 0 && rerr == io.EOF {
			break
		}
		line = bytes.TrimRightFunc(line, unicode.IsSpace)
		if lineno == 1 {
			if err := emit(line); err != nil {
				return fail(err)
			}
		} else {
			stats.Rows++
			token := firstField(line)
			if token == nil {
				return fail(&EmptyRowError{Line: lineno})
			}
			m, err := ParseMarker(string(token))
			if err != nil {
				var merr *MalformedMarkerError
				if errors.As(err, &merr) {
					merr.Line = lineno
				}
				return fail(err)
			}
			prev := t.last.Chromosome
			if t.Keep(m) {
				if stats.Kept == 0 || m.Chromosome != prev {
					stats.Chromosomes++
				}
				stats.Kept++
				stats.Last = m
				if err := emit(line); err != nil {
					return fail(err)
				}
			}
		}
		if rerr == io.EOF {
			break
		}
	}
	if err := bufw.Flush(); err != nil {
		return stats, &IOError{Op: "write", Err: err}
	}
	return stats, nil
}

// firstField returns the first whitespace-delimited field of line, or
// nil if line is blank.
func firstField(line []byte) []byte {
	start := bytes.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) })
	if start < 0 {
		return nil
	}
	line = line[start:]
	if end := bytes.IndexFunc(line, unicode.IsSpace); end >= 0 {
		line = line[:end]
	}
	return line
}

// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package beaglethin

import (
	"errors"
	"strconv"
	"strings"
)

var errNoUnderscore = errors.New("no '_' between chromosome and position")

// Marker identifies a site by chromosome and position, as encoded in
// the first column of a beagle file ("chr1_12345").
type Marker struct {
	Chromosome string
	Position   int64
}

func (m Marker) String() string {
	return m.Chromosome + "_" + strconv.FormatInt(m.Position, 10)
}

// ParseMarker splits token on its first underscore. Everything after
// that underscore must parse as a base-10 integer.
func ParseMarker(token string) (Marker, error) {
	idx := strings.IndexByte(token, '_')
	if idx < 0 {
		return Marker{}, &MalformedMarkerError{Token: token, Err: errNoUnderscore}
	}
	pos, err := strconv.ParseInt(token[idx+1:], 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return Marker{}, &MalformedMarkerError{Token: token, Err: err}
	}
	return Marker{Chromosome: token[:idx], Position: pos}, nil
}

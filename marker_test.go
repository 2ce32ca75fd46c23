// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package beaglethin

import (
	"errors"
	"strconv"

	"gopkg.in/check.v1"
)

type markerSuite struct{}

var _ = check.Suite(&markerSuite{})

func (s *markerSuite) TestParse(c *check.C) {
	for _, trial := range []struct {
		token string
		chrom string
		pos   int64
	}{
		{"chr1_5", "chr1", 5},
		{"scaffold12_0", "scaffold12", 0},
		{"NC_000001", "NC", 1},
		{"chr1_-3", "chr1", -3},
		{"chr1_+7", "chr1", 7},
		{"_42", "", 42},
	} {
		c.Logf("%q", trial.token)
		m, err := ParseMarker(trial.token)
		c.Assert(err, check.IsNil)
		c.Check(m.Chromosome, check.Equals, trial.chrom)
		c.Check(m.Position, check.Equals, trial.pos)
	}
}

func (s *markerSuite) TestMalformed(c *check.C) {
	for _, token := range []string{
		"chr1-5",
		"chr1_",
		"chr1_x",
		"chr_1_5",
		"chr1_5.0",
		"",
	} {
		c.Logf("%q", token)
		_, err := ParseMarker(token)
		var merr *MalformedMarkerError
		c.Check(errors.As(err, &merr), check.Equals, true)
		c.Check(merr.Token, check.Equals, token)
	}
}

func (s *markerSuite) TestOverflow(c *check.C) {
	_, err := ParseMarker("chr1_99999999999999999999")
	c.Check(errors.Is(err, strconv.ErrRange), check.Equals, true)
	c.Check(err, check.ErrorMatches, `malformed marker "chr1_9+": value out of range`)
}

func (s *markerSuite) TestString(c *check.C) {
	c.Check(Marker{"chr2", 1234}.String(), check.Equals, "chr2_1234")
}

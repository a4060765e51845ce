// SPDX-License-Identifier: MIT

package timing

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Point and segment annotation files are plain newline-delimited text:
// one decimal-seconds value per line for points, "start,end" per row for
// segments. The exact string form of each Rational is persisted, so
// load(save(list)) reproduces the list with exact instant equality.

// Write streams the list to w, one instant per line.
func (pl PointList) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, p := range pl {
		if _, err := fmt.Fprintln(bw, p.Time()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadPoints parses a point file from r. Blank lines are skipped.
func ReadPoints(r io.Reader) (PointList, error) {
	var pl PointList
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		t, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadRow, line)
		}
		pl = append(pl, PointAt(t))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return pl, nil
}

// SaveFile writes the list to path, replacing any existing file.
func (pl PointList) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return pl.Write(f)
}

// LoadPointsFile reads a point file from path.
func LoadPointsFile(path string) (PointList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadPoints(f)
}

// Write streams the list to w as CSV rows "start,end".
func (sl SegmentList) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, s := range sl {
		if err := cw.Write([]string{s.Start().Time().String(), s.End().Time().String()}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadSegments parses a segment file from r.
func ReadSegments(r io.Reader) (SegmentList, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	var sl SegmentList
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRow, err)
		}
		start, err := Parse(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadRow, rec[0])
		}
		end, err := Parse(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadRow, rec[1])
		}
		seg, err := NewSegment(PointAt(start), PointAt(end))
		if err != nil {
			return nil, err
		}
		sl = append(sl, seg)
	}

	return sl, nil
}

// SaveFile writes the list to path, replacing any existing file.
func (sl SegmentList) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return sl.Write(f)
}

// LoadSegmentsFile reads a segment file from path.
func LoadSegmentsFile(path string) (SegmentList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadSegments(f)
}

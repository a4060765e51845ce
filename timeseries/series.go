// SPDX-License-Identifier: MIT

package timeseries

import (
	"fmt"

	"github.com/staccato-dev/staccato/timing"
)

// Series is a uniformly sampled signal: an (nfeatures × nsamples) float64
// buffer plus exact temporal metadata. The last axis is the sample axis;
// a plain 1-D signal has nfeatures == 1.
//
// Series is a value type in effect: no exported operation mutates it after
// construction. The only write path is the constructor.
type Series struct {
	fs    timing.Rational
	start timing.Rational

	data  []float64 // feature-major: feature f occupies data[f*nsamp : (f+1)*nsamp]
	nfeat int
	nsamp int

	unit    string
	label   string
	caption string
}

// Option configures optional Series metadata at construction.
type Option func(*Series)

// WithStartTime anchors sample 0 at the given absolute time.
func WithStartTime(t timing.Rational) Option { return func(s *Series) { s.start = t } }

// WithUnit sets the display unit of the data.
func WithUnit(u string) Option { return func(s *Series) { s.unit = u } }

// WithLabel sets the display label.
func WithLabel(l string) Option { return func(s *Series) { s.label = l } }

// WithCaption sets the free-text caption.
func WithCaption(c string) Option { return func(s *Series) { s.caption = c } }

// New builds a 1-D series sampled at fs Hz. The data slice is copied.
// fs must be strictly positive.
func New(fs timing.Rational, data []float64, opts ...Option) (*Series, error) {
	return NewMulti(fs, data, 1, opts...)
}

// NewMulti builds a series with nfeatures rows packed feature-major into
// data. len(data) must be a multiple of nfeatures.
func NewMulti(fs timing.Rational, data []float64, nfeatures int, opts ...Option) (*Series, error) {
	if fs.Sign() <= 0 {
		return nil, ErrInvalidRate
	}
	if nfeatures < 1 || len(data)%nfeatures != 0 {
		return nil, fmt.Errorf("%w: len=%d nfeatures=%d", ErrBadShape, len(data), nfeatures)
	}

	s := &Series{
		fs:    fs,
		data:  append([]float64(nil), data...),
		nfeat: nfeatures,
		nsamp: len(data) / nfeatures,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// derive returns a new Series sharing the receiver's metadata but holding
// the given buffer. The buffer is adopted, not copied: every caller hands
// over a freshly allocated slice.
func (s *Series) derive(data []float64, nfeat int) *Series {
	out := *s
	out.data = data
	out.nfeat = nfeat
	out.nsamp = len(data) / nfeat

	return &out
}

// SampleRate returns the sampling frequency in Hz. Implements timing.Sampled.
func (s *Series) SampleRate() timing.Rational { return s.fs }

// StartTime returns the absolute time of sample 0. Implements timing.Sampled.
func (s *Series) StartTime() timing.Rational { return s.start }

// NSamples returns the length of the sample axis.
func (s *Series) NSamples() int { return s.nsamp }

// NFeatures returns the number of feature rows.
func (s *Series) NFeatures() int { return s.nfeat }

// Duration returns nsamples/fs in exact seconds.
func (s *Series) Duration() timing.Rational {
	return timing.FromInt(int64(s.nsamp)).Div(s.fs)
}

// EndTime returns start + duration in exact seconds.
func (s *Series) EndTime() timing.Rational { return s.start.Add(s.Duration()) }

// Nyquist returns fs/2.
func (s *Series) Nyquist() timing.Rational { return s.fs.Div(timing.FromInt(2)) }

// SamplePeriod returns 1/fs in exact seconds.
func (s *Series) SamplePeriod() timing.Rational {
	return timing.FromInt(1).Div(s.fs)
}

// Unit returns the display unit.
func (s *Series) Unit() string { return s.unit }

// Label returns the display label.
func (s *Series) Label() string { return s.label }

// Caption returns the free-text caption.
func (s *Series) Caption() string { return s.caption }

// Relabel returns a copy carrying new display metadata. Empty strings keep
// the current value.
func (s *Series) Relabel(label, unit string) *Series {
	out := s.derive(append([]float64(nil), s.data...), s.nfeat)
	if label != "" {
		out.label = label
	}
	if unit != "" {
		out.unit = unit
	}

	return out
}

// Data returns the backing buffer, feature-major. It is shared with the
// Series: callers must treat it as read-only. Use Floats for a private copy.
func (s *Series) Data() []float64 { return s.data }

// Floats returns a private copy of the backing buffer.
func (s *Series) Floats() []float64 { return append([]float64(nil), s.data...) }

// Row returns feature row f as a shared, read-only slice.
func (s *Series) Row(f int) []float64 {
	return s.data[f*s.nsamp : (f+1)*s.nsamp]
}

// At returns sample i of feature row f.
func (s *Series) At(f, i int) float64 { return s.data[f*s.nsamp+i] }

// Sample gathers the feature column at sample i into a new slice.
func (s *Series) Sample(i int) []float64 {
	col := make([]float64, s.nfeat)
	for f := 0; f < s.nfeat; f++ {
		col[f] = s.data[f*s.nsamp+i]
	}

	return col
}

// TimeAt returns the absolute time of sample i as a float64, for display.
func (s *Series) TimeAt(i int) float64 {
	return timing.PointFromSampleIndex(i, s).Seconds()
}

// Times returns the absolute time of every sample, for display and plotting.
func (s *Series) Times() []float64 {
	out := make([]float64, s.nsamp)
	for i := range out {
		out[i] = s.TimeAt(i)
	}

	return out
}

// String describes the series shape and metadata.
func (s *Series) String() string {
	return fmt.Sprintf("Series(nfeatures=%d, nsamples=%d, fs=%s, label=%q)",
		s.nfeat, s.nsamp, s.fs, s.label)
}

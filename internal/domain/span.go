package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Span is one timed phase of a forecast computation.
type Span struct {
	Name       string    `json:"name"`
	startTs    time.Time `json:"-"`
	subProfile *Profile  `json:"-"`

	SubSpans []*Span `json:"subSpans,omitempty"`
	Elapsed  *int64  `json:"elapsed"`
}

const ContextProfileKey = "computationProfile"

// GetProfile pulls the active profile out of a request context.
func GetProfile(ctx context.Context) (profile *Profile, endProfile func()) {
	profile = ctx.Value(ContextProfileKey).(*Profile)
	return profile, profile.End
}

// Profile is an ordered list of spans plus a total.
type Profile struct {
	Spans   []*Span
	startTs time.Time
	TotalMs *int64
}

func (p *Profile) End() {
	t := time.Since(p.startTs).Milliseconds()
	if p.TotalMs == nil {
		p.TotalMs = &t
	}
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
	if s.subProfile != nil {
		s.SubSpans = s.subProfile.Spans
	}
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return newProfile, newProfile.End
}

func NewSpan(name string) (*Span, func()) {
	newSpan := &Span{
		Name:    name,
		startTs: time.Now(),
	}
	return newSpan, newSpan.End
}

// StartNewSpan ends the last span and begins a new one.
// Not thread safe.
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan, endSpan = NewSpan(name)
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, endSpan
}

func (p *Profile) ToJsonBytes() ([]byte, error) {
	bytes, err := json.Marshal(p.Spans)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}

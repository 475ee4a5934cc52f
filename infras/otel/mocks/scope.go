package mocks

import "tasknest/infras/otel"

// Scope discards everything. Errors passed to TraceError are kept so tests can inspect them.
type Scope struct {
	Errors []error
}

func (s *Scope) End()                         {}
func (s *Scope) AddEvent(string)              {}
func (s *Scope) SetAttribute(string, any)     {}
func (s *Scope) SetAttributes(map[string]any) {}

func (s *Scope) TraceError(err error) {
	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func NewScope() otel.Scope {
	return &Scope{}
}

package mocks

import "stayhub/infras/otel"

// scopeImpl discards everything handed to it.
type scopeImpl struct{}

func (scopeImpl) End() {}
func (scopeImpl) TraceError(_ error) {}
func (scopeImpl) TraceIfError(_ error) {}
func (scopeImpl) AddEvent(_ string) {}
func (scopeImpl) SetAttribute(_ string, _ any) {}
func (scopeImpl) SetAttributes(_ map[string]any) {}

func NewScope() otel.Scope {
	return scopeImpl{}
}

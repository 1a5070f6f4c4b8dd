package exttool

import (
	"errors"

	"github.com/flexigpt/llmtools-go"

	writeext "github.com/vswrite/extensions-go"
)

// NewToolsRegistry creates an llmtools-go Registry and registers ONLY the extension tools into it.
func NewToolsRegistry(rt *writeext.Runtime, opts ...llmtools.RegistryOption) (*llmtools.Registry, error) {
	if rt == nil {
		return nil, errors.New("nil runtime")
	}
	r, err := llmtools.NewRegistry(opts...)
	if err != nil {
		return nil, err
	}
	if err := Register(r, rt); err != nil {
		return nil, err
	}
	return r, nil
}

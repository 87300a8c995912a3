package view

import (
	"errors"
	"fmt"
)

// ErrSetup marks configuration faults: a template, container or expected
// sub-element that is not there. These are programming errors; callers are
// expected to abort rather than retry.
var ErrSetup = errors.New("view: setup fault")

var (
	ErrTemplateNotFound  = fmt.Errorf("%w: template not found", ErrSetup)
	ErrContainerNotFound = fmt.Errorf("%w: container not found", ErrSetup)
	ErrNoRootElement     = fmt.Errorf("%w: template has no root element", ErrSetup)
	ErrElementNotFound   = fmt.Errorf("%w: element not found", ErrSetup)
)

// IsSetupFault reports whether err stems from a missing template, container
// or element.
func IsSetupFault(err error) bool {
	return errors.Is(err, ErrSetup)
}

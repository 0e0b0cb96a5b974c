package providers

import (
	"github.com/gookit/validate"

	"github.com/km1000101/the-Editors-hub/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks the config against the `validate` struct tags. Only the
// first error is surfaced; a config is fixed one complaint at a time.
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors.OneError()
	}
	return nil
}

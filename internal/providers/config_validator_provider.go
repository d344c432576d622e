package providers

import (
	"fmt"
	"github.com/gookit/validate"
	"sentwatch/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors.OneError()
	}

	if len(cv.conf.Profiles) == 0 {
		return fmt.Errorf("config: at least one profile must be configured")
	}
	seen := make(map[string]struct{}, len(cv.conf.Profiles))
	for i := range cv.conf.Profiles {
		p := &cv.conf.Profiles[i]
		if p.Username == "" {
			return fmt.Errorf("config: profile %d has no username", i)
		}
		if _, ok := seen[p.Username]; ok {
			return fmt.Errorf("config: duplicate profile %q", p.Username)
		}
		seen[p.Username] = struct{}{}
		if p.Threshold < 0 {
			return fmt.Errorf("config: profile %q has negative threshold", p.Username)
		}
		for item, t := range p.Thresholds {
			if t <= 0 {
				return fmt.Errorf("config: profile %q item %q has non-positive threshold", p.Username, item)
			}
		}
	}
	return nil
}

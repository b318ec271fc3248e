package docctx

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-apidoc/service"
	"github.com/0xalexb/hjarta-apidoc/typeref"
)

// SettingsPath is the section of the settings file holding Settings.
const SettingsPath = "docs"

// ErrInvalidStatusCode is returned for response codes outside 100-599.
var ErrInvalidStatusCode = errors.New("status code out of range")

// ErrEmptyRule is returned when an alternate type rule lacks a source or target.
var ErrEmptyRule = errors.New("alternate type rule needs a source and a target")

// Settings are the user adjustments applied on top of the defaults.
type Settings struct {
	UseDefaultResponses   *bool                        `yaml:"useDefaultResponses"`
	IgnoredParameterTypes []string                     `yaml:"ignoredParameterTypes"`
	ExcludeAnnotations    []string                     `yaml:"excludeAnnotations"`
	GlobalResponses       map[string][]ResponseSetting `yaml:"globalResponses"`
	AlternateTypeRules    []RuleSetting                `yaml:"alternateTypeRules"`
}

// ResponseSetting documents one additional response.
type ResponseSetting struct {
	Code    int    `yaml:"code"`
	Message string `yaml:"message"`
	Model   string `yaml:"model"`
}

// RuleSetting substitutes Target for Source, both written in typeref notation.
type RuleSetting struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// SetDefaults enables the default responses unless explicitly disabled.
func (s *Settings) SetDefaults() bool {
	if s.UseDefaultResponses != nil {
		return false
	}

	enabled := true
	s.UseDefaultResponses = &enabled

	return true
}

// Validate checks methods, status codes and type names.
func (s *Settings) Validate() error {
	for _, name := range append(append([]string(nil), s.IgnoredParameterTypes...), s.ExcludeAnnotations...) {
		if _, err := typeref.Parse(name); err != nil {
			return err //nolint:wrapcheck // already names the offending text.
		}
	}

	for method, responses := range s.GlobalResponses {
		if _, err := service.ParseHTTPMethod(method); err != nil {
			return err //nolint:wrapcheck
		}

		for _, response := range responses {
			if err := response.validate(); err != nil {
				return fmt.Errorf("%s: %w", method, err)
			}
		}
	}

	for i, rule := range s.AlternateTypeRules {
		if rule.Source == "" || rule.Target == "" {
			return fmt.Errorf("rule %d: %w", i, ErrEmptyRule)
		}

		if _, err := typeref.Parse(rule.Source); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}

		if _, err := typeref.Parse(rule.Target); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}

	return nil
}

func (r ResponseSetting) validate() error {
	if r.Code < 100 || r.Code > 599 {
		return fmt.Errorf("%w: %d", ErrInvalidStatusCode, r.Code)
	}

	if r.Model != "" {
		if _, err := typeref.Parse(r.Model); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}

func (r ResponseSetting) message() service.ResponseMessage {
	var opts []service.ResponseOption

	if r.Message != "" {
		opts = append(opts, service.WithMessage(r.Message))
	}

	if r.Model != "" {
		opts = append(opts, service.WithResponseModel(typeref.MustParse(r.Model)))
	}

	return service.NewResponseMessage(r.Code, opts...)
}

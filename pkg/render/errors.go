package render

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped render errors so CLI surfaces and logs can
// classify failures without string matching.
const (
	TemplateNotFoundCode = "TEMPLATE_NOT_FOUND"
	MissingVariableCode  = "TEMPLATE_MISSING_VARIABLE"
	TemplateSyntaxCode   = "TEMPLATE_SYNTAX"
)

// Sentinel errors for the render pipeline. Callers match with errors.Is; the
// helpers below add context while keeping the sentinel in the chain.
var (
	// ErrTemplateNotFound reports a template reference that does not resolve
	// to a loadable asset.
	ErrTemplateNotFound = errors.New("render: template not found")

	// ErrMissingVariable reports a template placeholder with no bound value
	// in the widget's attribute mapping.
	ErrMissingVariable = errors.New("render: missing template variable")

	// ErrTemplateSyntax reports a template that fails to parse.
	ErrTemplateSyntax = errors.New("render: invalid template syntax")
)

// TemplateNotFound wraps ErrTemplateNotFound with the offending reference.
func TemplateNotFound(name string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %q: %v", ErrTemplateNotFound, name, cause)
	}
	return fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
}

// MissingVariable wraps ErrMissingVariable with the placeholder and the
// template that expected it.
func MissingVariable(name, template string) error {
	return fmt.Errorf("%w: %q has no bound value for template %q", ErrMissingVariable, name, template)
}

// TemplateSyntax wraps ErrTemplateSyntax with the parse failure.
func TemplateSyntax(name string, cause error) error {
	return fmt.Errorf("%w: %q: %v", ErrTemplateSyntax, name, cause)
}

// WrapExternal decorates a render error for outer surfaces (CLI, checks) with
// a go-errors category and text code. The original sentinel stays reachable
// through the wrapped chain.
func WrapExternal(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, ErrTemplateNotFound):
		return goerrors.Wrap(err, goerrors.CategoryValidation, "template could not be resolved").
			WithTextCode(TemplateNotFoundCode)
	case errors.Is(err, ErrMissingVariable):
		return goerrors.Wrap(err, goerrors.CategoryValidation, "template placeholder unbound").
			WithTextCode(MissingVariableCode)
	case errors.Is(err, ErrTemplateSyntax):
		return goerrors.Wrap(err, goerrors.CategoryValidation, "template failed to parse").
			WithTextCode(TemplateSyntaxCode)
	default:
		return err
	}
}

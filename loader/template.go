// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loader

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"text/template"
)

// TemplateParseError occurs when a config template fails to be parsed.
type TemplateParseError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e TemplateParseError) Error() string {
	return fmt.Sprintf("failed to parse config template %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e TemplateParseError) Unwrap() error {
	return e.Cause
}

// TemplateExecError occurs when a template fails to execute. Most
// likely cause is a template function returning an error or panicing.
type TemplateExecError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e TemplateExecError) Error() string {
	return fmt.Sprintf("failed to exec config template %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e TemplateExecError) Unwrap() error {
	return e.Cause
}

func render(path string, b []byte, funcs template.FuncMap) (*bytes.Buffer, error) {
	tmpl, err := template.New(path).
		Funcs(funcs).
		Parse(string(b))
	if err != nil {
		return nil, TemplateParseError{Path: path, Cause: err}
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct{}{})
	if err != nil {
		return nil, TemplateExecError{Path: path, Cause: err}
	}
	return &buf, nil
}

func defaultTemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"env":     os.Getenv,
		"default": defaultValue,
	}
}

// defaultValue returns def if v is nil or the zero value for its type.
func defaultValue(def, v any) any {
	if v == nil {
		return def
	}
	if reflect.ValueOf(v).IsZero() {
		return def
	}
	return v
}

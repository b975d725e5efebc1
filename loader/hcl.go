// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loader

import (
	"fmt"
	"io"

	"github.com/z5labs/cascade/config"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// InvalidHCLError occurs if a document contains invalid HCL or uses
// constructs which cannot be represented as plain data.
type InvalidHCLError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidHCLError) Error() string {
	return fmt.Sprintf("invalid hcl: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidHCLError) Unwrap() error {
	return e.Cause
}

// HCL decodes the top-level attributes of an HCL native syntax document.
// Blocks, variables and function calls are not supported. Numbers are
// decoded as float64.
var HCL Decoder = DecoderFunc(decodeHCL)

func decodeHCL(r io.Reader) (config.Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	file, diags := hclparse.NewParser().ParseHCL(b, "config.hcl")
	if diags.HasErrors() {
		return nil, InvalidHCLError{Cause: diags}
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, InvalidHCLError{Cause: diags}
	}

	c := make(config.Config, len(attrs))
	for name, attr := range attrs {
		v, err := evalAttribute(attr)
		if err != nil {
			return nil, InvalidHCLError{Cause: err}
		}
		c[name] = v
	}
	return c, nil
}

func evalAttribute(attr *hcl.Attribute) (any, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	v, err := ctyToNative(val)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", attr.Name, err)
	}
	return v, nil
}

func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		var f float64
		err := gocty.FromCtyValue(v, &f)
		if err != nil {
			return nil, err
		}
		return f, nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		s := make([]any, 0)
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			nv, err := ctyToNative(ev)
			if err != nil {
				return nil, err
			}
			s = append(s, nv)
		}
		return s, nil
	case ty.IsObjectType() || ty.IsMapType():
		m := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			nv, err := ctyToNative(ev)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k.AsString(), err)
			}
			m[k.AsString()] = nv
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported value type: %s", ty.FriendlyName())
	}
}

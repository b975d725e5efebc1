// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loader

import "slices"

// Entry pairs a file extension, without its leading dot, with a Loader.
type Entry struct {
	Extension string
	Loader    Loader
}

// Registry is an ordered, immutable set of Loaders keyed by extension.
// Its order is the order in which results for the same candidate are merged.
type Registry struct {
	entries []Entry
}

// NewRegistry returns a Registry holding entries in the given order. A later
// entry for an already present extension replaces the earlier Loader but
// keeps its position.
func NewRegistry(entries ...Entry) Registry {
	var r Registry
	for _, e := range entries {
		r = r.Register(e.Extension, e.Loader)
	}
	return r
}

// Register returns a copy of r with l registered for ext. A new extension is
// appended; an existing one has its Loader replaced in place.
func (r Registry) Register(ext string, l Loader) Registry {
	entries := slices.Clone(r.entries)
	i := slices.IndexFunc(entries, func(e Entry) bool { return e.Extension == ext })
	if i >= 0 {
		entries[i].Loader = l
		return Registry{entries: entries}
	}
	return Registry{entries: append(entries, Entry{Extension: ext, Loader: l})}
}

// Lookup returns the Loader registered for ext.
func (r Registry) Lookup(ext string) (Loader, bool) {
	i := slices.IndexFunc(r.entries, func(e Entry) bool { return e.Extension == ext })
	if i < 0 {
		return nil, false
	}
	return r.entries[i].Loader, true
}

// Extensions returns the registered extensions in order.
func (r Registry) Extensions() []string {
	exts := make([]string, len(r.entries))
	for i, e := range r.entries {
		exts[i] = e.Extension
	}
	return exts
}

// Entries returns a copy of the registered entries in order.
func (r Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Len returns the number of registered extensions.
func (r Registry) Len() int {
	return len(r.entries)
}

// Defaults returns a Registry with file loaders for the formats supported by
// this package, in the order json, toml, yml, yaml and hcl. The given options
// apply to every loader.
func Defaults(opts ...FileOption) Registry {
	return NewRegistry(
		Entry{Extension: "json", Loader: File(JSON, opts...)},
		Entry{Extension: "toml", Loader: File(TOML, opts...)},
		Entry{Extension: "yml", Loader: File(YAML, opts...)},
		Entry{Extension: "yaml", Loader: File(YAML, opts...)},
		Entry{Extension: "hcl", Loader: File(HCL, opts...)},
	)
}

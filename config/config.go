// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import "maps"

// Config is a resolved set of key value pairs. Values may be arbitrarily
// nested maps, slices or scalars and are never assumed to be homogeneous.
type Config map[string]any

// Clone returns a shallow copy of c. A nil Config clones to an empty one.
func (c Config) Clone() Config {
	m := make(Config, len(c))
	maps.Copy(m, c)
	return m
}

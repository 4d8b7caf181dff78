// SPDX-License-Identifier: EPL-2.0

// Package formats bundles the codec packages into a ready audio.Registry.
package formats

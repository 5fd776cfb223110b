// SPDX-License-Identifier: MIT
package dpcolor

// SetRemoveAll swaps the directory removal used by Job.Close and returns a restore func.
func SetRemoveAll(fn func(string) error) (restore func()) {
	prev := removeAll
	removeAll = fn

	return func() { removeAll = prev }
}

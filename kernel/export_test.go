// SPDX-License-Identifier: MIT
package kernel

// SelfCacheLen reports how many self-kernels the engine retains between calls.
func (e *Engine) SelfCacheLen() int {
	e.selfMu.RLock()
	defer e.selfMu.RUnlock()

	return len(e.selfCache)
}

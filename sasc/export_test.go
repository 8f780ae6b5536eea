// SPDX-License-Identifier: MIT

package sasc

import (
	"math/rand"

	"github.com/plastic-phy/plastic/tree"
)

// Test-Bridge (White-Box) for the learning walk and start-tree sampler
//
// Purpose:
//   - Expose the unexported random-walk step and random start tree to
//     sasc_test ONLY, without widening the production API.
//   - Compiled only into the test binary (standard export_test.go).

// PerturbRates_TestOnly runs one walk step and returns an undo closure
// that rolls the model back to its pre-step values.
func PerturbRates_TestOnly(em *ErrorModel) (undo func()) {
	s := em.perturb()

	return func() { em.restore(s) }
}

// RandomTree_TestOnly samples a start tree from a fixed seed.
func RandomTree_TestOnly(m int, labels []string, monoclonal bool, seed int64) (*tree.Tree, error) {
	return randomTree(m, labels, monoclonal, rand.New(rand.NewSource(seed)))
}

package zkproof

import "golang.org/x/sync/errgroup"

// VerifyBatch checks every proof in proofs concurrently and reports which
// ones failed. It exploits the fact that Verify touches no shared state: a
// ZKProof owns every byte it reads, so running many Verify calls in
// parallel needs no locking on the proof side. The returned slice has the
// same length and order as proofs; results[i] is true iff proofs[i]
// verified.
func VerifyBatch(proofs []*ZKProof) []bool {
	results := make([]bool, len(proofs))

	var g errgroup.Group
	for i, p := range proofs {
		i, p := i, p
		g.Go(func() error {
			results[i] = p.Verify()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

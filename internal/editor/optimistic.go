package editor

import "context"

// PerformOptimistic applies a change locally, runs the remote call and
// rolls the local change back when the call fails. Section editors and the
// dashboard delete flow share this so the rollback contract is uniform.
func PerformOptimistic(ctx context.Context, applyLocally func(), remoteCall func(context.Context) error, rollbackLocally func()) error {
	applyLocally()
	if err := remoteCall(ctx); err != nil {
		rollbackLocally()
		return err
	}
	return nil
}

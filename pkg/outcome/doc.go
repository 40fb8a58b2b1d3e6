// Package outcome wraps remote operations so every call site reports results
// the same way: a uniform Outcome, at most one notification and at most one
// log line per failure.
//
//	w := outcome.NewWrapper(outcome.WithNotifier(n), outcome.WithLogger(log))
//	out := outcome.Wrap(ctx, w, func(ctx context.Context) (*backend.Task, error) {
//	    return client.CreateTask(ctx, userID, in)
//	}, outcome.WithSuccessToast("Task created"), outcome.WithErrorMessage("Could not create task"))
//
// Errors returned by the operation and panics inside it are handled alike:
// the error is logged, a friendly message is picked from the Catalog (falling
// back to the per-call message), and an error notification is shown.
//
// Variants:
//   - WrapSignOut treats a missing session as a successful sign out.
//   - WrapBool reports only whether the operation succeeded.
//   - WrapWithSession resolves the signed in user first and never calls the
//     operation when nobody is signed in. WrapBoolWithSession is its boolean form.
//   - Reject reports a validation failure without calling anything.
package outcome

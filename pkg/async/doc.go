// Package async runs functions on their own goroutine and hands back a
// generic Future.
//
//	f := async.Async(ctx, raw, func(ctx context.Context, raw any) (Result, error) {
//	    return check(raw), nil
//	})
//	res, err := f.AwaitContext(ctx)
//
// WaitAll collects several futures in order and WaitAny returns the first to
// finish. Panics inside the function complete the future with ErrPanic
// instead of crashing the process.
package async

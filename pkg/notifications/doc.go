// Package notifications delivers short user facing messages (toasts) from
// operation wrappers to whatever presents them.
//
// Delivery is fire-and-forget: Notify has no return value and callers never
// wait on presentation.
//
//	mem := notifications.NewMemoryNotifier()
//	n := notifications.NewMultiNotifier(mem, notifications.NewLogNotifier(log))
//	n.Notify(ctx, notifications.TypeSuccess, "Task created")
package notifications

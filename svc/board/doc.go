// Package board is the call-site layer of ChoreBoard. Every user operation
// runs the same sequence:
//
//  1. parse the raw form input with its composite schema from pkg/forms
//  2. on failure, report the single validation message through
//     outcome.Reject; the backend is never contacted
//  3. on success, invoke the backend through the outcome wrapper, resolving
//     the current session first for operations that act on behalf of a user
//
// Usage:
//
//	var cfg board.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	svc := board.New(client,
//		board.WithConfig(cfg),
//		board.WithNotifier(toasts),
//		board.WithLogger(cfg.Logger(os.Stderr)),
//	)
//
//	res := svc.CreateTask(ctx, map[string]any{
//		"projectId": projectID,
//		"columnId":  columnID,
//		"title":     "Take out the trash",
//		"priority":  "h",
//		"status":    "todo",
//	})
//	if !res.Success {
//		return res.Err
//	}
package board

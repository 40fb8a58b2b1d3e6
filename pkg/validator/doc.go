// Package validator provides small, composable validation rules for user input.
//
// Each exported constructor returns a Rule: a Check closure paired with a
// ValidationError describing the failure. Rules carry translation keys so a
// caller can localise messages, and a plain English fragment ("must be at most
// 50 characters long") that reads as a sentence once prefixed with a field
// label.
//
// # Evaluation
//
// Two evaluators are provided:
//
//   - Apply runs every rule and returns all failures as ValidationErrors.
//   - First stops at the first failing rule and returns it alone.
//
// Input forms use First: a user sees one actionable message, not a rule dump.
//
//	err := validator.First(
//	    validator.RequiredString("email", email),
//	    validator.ValidEmail("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    fmt.Println(verrs[0].Message)
//	}
//
// # Error Handling
//
// ValidationErrors implements error, so errors.As recovers the details from
// wrapped errors; ExtractValidationErrors does that in one call.
//
// The package holds no mutable state; regular expressions are compiled once at
// initialisation, so all rules are safe for concurrent use.
package validator

// Package backend declares the remote operations ChoreBoard performs against
// its hosted backend: authentication, profiles, projects, columns, tasks and
// membership.
//
// Every operation accepts only sanitized inputs from package forms, so a call
// site cannot hand raw user input to the backend without first validating it.
// Errors carry the backend's own wording (for example "Invalid login
// credentials"); translating them for users is the caller's job.
//
// Package memory provides an in-process implementation for development,
// tests and the CLI.
package backend

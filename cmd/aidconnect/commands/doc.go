// Package commands defines the aidconnect CLI and wires dependencies for subcommands.
//
// Commands
//
//   - register       Create an account and log in
//   - login          Log in with email and password
//   - logout         Forget the stored session
//   - whoami         Show the logged-in profile
//   - dashboard      Community overview and your recent activity
//   - health         Check backend health
//   - request new    Post a help request through a step-by-step form
//   - request list   Browse and filter help requests
//   - request show   Show one request with its suggested helpers
//   - offer new      Post a help offer through a step-by-step form
//   - offer list     Browse help offers
//
// # Implementation
//
// The root command resolves configuration, builds the dependency graph
// (session store, API client, services) and restores any saved session before
// a subcommand runs. Errors are printed once as a single message.
package commands

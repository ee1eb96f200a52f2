// Package helperd implements the local control daemon and its client.
//
// The daemon is a small HTTP service on a fixed local port that lets
// the console launch applications and control the machine (shutdown,
// restart, lock). The console only ever treats it as optional: an
// unreachable daemon is a user-visible advisory, never a crash.
package helperd

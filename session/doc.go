// Package session contains concrete SessionStore implementations. The store
// interface and Session type reside in the core package; depend on
// core.SessionStore and select an implementation at wiring time.
package session

// Package tracker maintains ordered, named workflow steps and renders them
// as a tree for terminal display.
//
// The tracker is deliberately permissive: it holds display state but does
// not enforce a workflow. Any transition call can set any state at any
// time, and transitions on unregistered keys create the step on the fly.
// The init command owns a tracker for the duration of one scaffold run and
// discards it wholesale when the run ends.
//
// Rendering is a pure projection: Render has no side effects and repeated
// calls between mutations return identical output, so a live display may
// call it at whatever rate it repaints.
package tracker

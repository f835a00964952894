// Package heart holds the math shared by both renderers.
//
// Two independent representations of the same shape:
//
//   - [Points]: an ordered parametric outline, consumed by the windowed
//     polygon renderer after a per-frame [Transform]
//   - [Inside]: an implicit inequality test, evaluated per character cell
//     by the terminal renderer
//
// Everything here is pure; all animation state lives in the callers.
package heart

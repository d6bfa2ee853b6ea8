// Package render drives a drawing surface through an assembled traversal one
// step at a time.
//
// What:
//
//   - Renderer is the drawing-surface contract: Clear resets it, Draw renders
//     one arrow at a coordinate.
//   - Play calls Clear once and then Draw once per step, in order. It may pause
//     between steps (WithDelay) and stops emitting steps when its context is
//     cancelled; the traversal itself is never touched.
//   - TextCanvas is an in-memory n×n arrow board rendered as text, optionally
//     styled with lipgloss.
//   - Recorder remembers every call; Stream writes one line per arrow.
//
// Concurrency:
//
//   - Play is strictly sequential. TextCanvas and Recorder are safe for use
//     from multiple goroutines, so a UI may read a canvas while Play fills it.
//
// Errors:
//
//   - ErrNilRenderer, ErrNilSequence: Play was handed nothing to work with.
//   - ctx.Err(): playback was cancelled; the returned count says how many
//     steps were drawn.
package render

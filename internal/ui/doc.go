// Package ui contains the application loop that powers the timer.
//
// Event flow:
//   - An EventSource (event.Source in production, MemorySource in tests)
//     yields events one at a time. Loop.Run pulls them until a Quit action,
//     a fatal error, or the end of the stream.
//   - Loop.Handle routes each event through a handler registry keyed by
//     event.Kind. Key events are resolved to actions with the shared
//     input.ActionMap; unbound keys are ignored. Ticks call Update on every
//     component, mouse events call HandleMouse.
//   - After an event the loop draws every component into its own vertical
//     slice of the render.Surface. A failing draw is wrapped and sent back
//     into the stream as a recoverable error, which is logged and otherwise
//     ignored. Fatal errors end Run.
//
// State ownership:
//   - Components, their clocks and the session are touched only from the
//     loop goroutine. The component.Context is handed to every hook by
//     pointer; settings and bindings are read-only.
//   - Cursor and viewport bookkeeping for lists lives in internal/ui/state.
//
// Harness runs the same Loop synchronously over a MemorySource and a
// render.MemorySurface, so tests can script events and inspect frames
// without a terminal.
package ui

// Package input defines the event types delivered by the windowing
// collaborator and the interpreter that classifies them into the
// closed set of navigation and scroll commands.
//
// Events and commands are both sealed sums: the backend produces
// KeyEvent, WheelEvent, and ResizeEvent; the interpreter emits
// MotionCommand, ScrollPixels, ScrollCells, Resize, and Quit. The
// application routes each command to the cursor model or the viewport
// controller and reconciles the viewport after cursor moves.
package input

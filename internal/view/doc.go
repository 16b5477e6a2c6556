// Package view builds frames: it reads the buffer, cursor model, and
// viewport controller and emits renderer-agnostic draw instructions in
// final pixel coordinates. Rows scrolled past the end of the buffer
// render the "~" placeholder and a buffer without a source path is
// labelled "[No Name]", so an empty buffer is an ordinary frame rather
// than a special case.
package view

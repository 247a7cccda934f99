// Package darwin provides macOS platform support: CoreGraphics keystroke
// simulation and System Events window queries.
// All functionality requires CGo (Objective-C frameworks); elsewhere the
// package is empty and registers nothing.
package darwin

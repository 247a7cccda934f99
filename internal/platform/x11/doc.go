// Package x11 provides X11 platform support by driving xdotool(1).
package x11

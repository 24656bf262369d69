// Package terminal defines the rendering backend contract for the celltui
// toolkit and provides a tcell-based implementation of it.
//
// The toolkit core (terminal/tui) never talks to the terminal directly. It
// draws through the Backend interface: rectangular surfaces, indexed color
// pairs, and a blocking key read. A Surface is a clipped view onto the
// physical screen, bound 1:1 to a window node for its whole lifetime.
//
// Color handling follows the classic curses model: a fixed set of (fg,bg)
// pairs is registered up front, one pair is "applied" at a time, and all
// paint calls use the applied pair.
package terminal

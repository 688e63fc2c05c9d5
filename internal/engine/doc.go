// Package engine implements the rules of the falling-block game: the board,
// tetromino templates, collision, rotation, line clearing, scoring and the
// timed loop that ties rendering and input to the game state.
//
// The engine never touches a terminal or a clock. Hosts pass elapsed time to
// Advance (or wall time to Loop.Iterate), feed Commands through an
// InputSource and receive frames through a Renderer.
package engine

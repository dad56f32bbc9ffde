// Package autotile picks tile-sheet frames and collision shapes for water and
// dead-zone wall tiles from the presence of their neighbours.
//
// Frame selection is pure and table driven. Applying a frame to a sprite sheet,
// replacing a collision box and emitting draw calls go through the small
// FrameStrip, Body and Canvas interfaces so the tables can be exercised without
// a rendering backend.
package autotile

// Package layout packs finished strips into a printable sheet: one
// tape-width band, strips side by side with a cutting gap, optional inward
// shrink per face so decals sit inside their printed outline, optional
// whole-set duplication, and a margin all around. Packing is deterministic;
// the same strips and options always produce the same coordinates.
package layout

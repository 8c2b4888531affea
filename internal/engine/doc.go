// Package engine accumulates routed document values per target and renders
// them as namelists and cards.
//
// An Engine is created per conversion from compiled maps, an encoder
// registry and the declared groups. The walker feeds it with SetPath;
// Render then emits namelists in declaration order (entries sorted
// case-insensitively) followed by cards, each card produced by the encoder
// bound to its accumulated values. A Layout may rearrange or wrap the
// rendered sections.
//
// Engines are not safe for concurrent use. The compiled maps they read are.
package engine

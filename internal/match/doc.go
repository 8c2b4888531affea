// Package match provides name normalization, edit distance and ranked
// "did you mean" suggestions for encoder names and document paths.
package match

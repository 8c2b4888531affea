// Package options holds the encoders that derive namelist parameters from
// several document values at once: per-species vectors, spin and cell
// settings, the electric field model and a few unit conversions.
//
// Every encoder has the engine.Encoder signature and is registered under the
// name templates refer to (see Register). Missing inputs are logged and
// produce no lines; only a reference to an undeclared species aborts the
// conversion with a *mapping.DocumentError.
package options

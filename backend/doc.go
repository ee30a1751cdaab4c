// Package backend defines the native FFT engine surface that fftcompat
// translates plans onto.
//
// An Engine owns plan creation, execution, workspace sizing, and device
// memory. Exactly one engine is active at a time; callers register one with
// RegisterEngine before creating plans. The package ships a CPU-backed
// software engine suitable for development and tests.
package backend

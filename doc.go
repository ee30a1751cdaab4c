// Package fftcompat is a compatibility layer that exposes a cuFFT-style plan
// API on top of a pluggable native FFT engine.
//
// A logical plan is created empty with Create, populated by exactly one
// MakePlan call, and torn down with Destroy. Behind each logical plan the
// library keeps up to four engine plans, one per combination of placement
// (in-place or out-of-place) and direction (forward or inverse). Execution
// calls pick among them from pointer equality of the input and output
// buffers and from the transform's data types; placement is never an
// explicit parameter.
//
// Every operation reports a Result code. Logical plans are not internally
// synchronized: callers must not mutate a plan concurrently with itself or
// with one of its executions. Distinct plans are independent.
//
// An engine must be registered with the backend package before plans can be
// created; backend.RegisterSoftEngine installs a CPU engine suitable for
// development and tests.
package fftcompat

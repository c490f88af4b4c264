// Package dispatcher replays resolved instructions through an input actuator.
//
// The dispatcher is the execution half of the interpreter. It receives the
// fully parsed and resolved instruction list and, for each instruction,
// invokes exactly one primitive on an Actuator, then waits a fixed delay.
//
// # Timing
//
// A run starts with one settle delay so the user can release the keyboard
// and focus the target window. After that every instruction is followed by the
// same delay:
//
//	sleep
//	instruction 1, sleep
//	instruction 2, sleep
//	...
//
// A run of N instructions therefore makes N actuator calls and N+1 sleeps.
// The delay defaults to one second and is set through Config; there is no
// per-instruction timing.
//
// # Failure
//
// Execution stops at the first failing instruction and returns an *ExecError.
// Instructions that already ran have taken effect and are not undone.
//
// # Concurrency
//
// A Dispatcher is single-threaded: Run blocks until the run finishes and the
// sleeps cannot be interrupted. The actuator is expected to be synchronous.
package dispatcher

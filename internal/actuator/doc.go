// Package actuator provides dispatcher.Actuator implementations.
//
// Robot injects real mouse and keyboard events through robotgo. Trace performs
// no input at all and logs each call instead, which makes it possible to check
// what a script would do without touching the desktop.
//
// Select one by name with New.
package actuator

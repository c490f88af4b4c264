// Package recorder captures keystrokes from a terminal and turns them into
// script instructions.
//
// Printable characters typed in a row become one key_sequence line. Named
// keys become key_click lines, and keys held with Ctrl, Alt or Meta become a
// key_down/key_click/key_up chord. Ctrl+C ends the capture.
//
// The output of Format(Record()) parses back with script.Parse.
package recorder

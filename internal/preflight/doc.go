// Package preflight provides readiness checks for the executables and
// filesystem paths an extraction run depends on.
//
// The checks back the "audioextract check" command. The extraction command
// does not run them; its failures are reported from the subprocess outcomes.
package preflight

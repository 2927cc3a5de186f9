// Package templates holds the starter projects written by hyperflex init:
// a hyperflex.json config and one or more element documents.
package templates

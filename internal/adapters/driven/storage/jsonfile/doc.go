// Package jsonfile stores the candidate book and user preferences as JSON
// documents on the local filesystem.
//
// Writes go to a temporary file in the target directory which is then
// renamed over the original, so a crash mid-write leaves the previous file
// intact.
package jsonfile

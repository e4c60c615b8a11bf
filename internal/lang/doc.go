// Package lang maps file paths to the closed set of languages the
// analyzer understands. Classification is a pure function of the file
// extension; anything unrecognized is Unknown.
package lang

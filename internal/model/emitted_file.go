package model

import "strings"

// EmittedFile is one output file: a path relative to the output datapack
// root, and its final bytes. Bytes must end in "\n"; callers that build
// content incrementally should call EnsureTrailingNewline before
// constructing the EmittedFile.
type EmittedFile struct {
	Path  string
	Bytes []byte
}

// EnsureTrailingNewline appends "\n" to s if it does not already end with
// one.
func EnsureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// NewEmittedFile builds an EmittedFile, normalizing the trailing newline.
func NewEmittedFile(path, text string) EmittedFile {
	return EmittedFile{Path: path, Bytes: []byte(EnsureTrailingNewline(text))}
}

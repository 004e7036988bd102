// Package model defines the data structures shared by the generator layers.
package model

// Path represents a file system path.
type Path string

// File represents a file on disk together with its content fingerprint.
type File struct {
	Path     Path
	FullPath Path
	Hash     string
}

// Source represents a Go source file that may declare generator targets.
type Source struct {
	Origin *File
	// Package is the Go package clause name of the file.
	Package string
}

// GeneratedFile is the output produced for one source file.
type GeneratedFile struct {
	Path    Path
	Content []byte
}

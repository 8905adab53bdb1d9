package scanner

import "errors"

// Input errors
var (
	ErrPathNotFound = errors.New("path does not exist")
	ErrNoInput      = errors.New("no input paths")
)

// Per-file errors, recorded on the result of the skipped file
var (
	ErrFileTooLarge = errors.New("file exceeds the size limit")
	ErrBinaryFile   = errors.New("file looks binary")
	ErrScanFailed   = errors.New("scan failed")
)

// Package operations models the mutating filesystem steps of a bootstrap
// run as explicit operations so they can be previewed in dry-run mode and
// executed through synthfs.
package operations

import (
	"os"
)

// Type identifies what an operation does
type Type string

// Operation types
const (
	TypeWriteFile  Type = "write_file"
	TypeDeleteFile Type = "delete_file"
	TypeCopyFile   Type = "copy_file"
	TypeRename     Type = "rename"
)

// Operation is one mutating filesystem step
type Operation struct {
	Type        Type
	Source      string
	Target      string
	Content     []byte
	Mode        os.FileMode
	Description string
}

// WriteFile creates an operation that writes content to target
func WriteFile(target string, content []byte, mode os.FileMode, description string) Operation {
	return Operation{
		Type:        TypeWriteFile,
		Target:      target,
		Content:     content,
		Mode:        mode,
		Description: description,
	}
}

// DeleteFile creates an operation that removes target
func DeleteFile(target, description string) Operation {
	return Operation{
		Type:        TypeDeleteFile,
		Target:      target,
		Description: description,
	}
}

// Rename creates an operation that moves source to target. It applies to
// files and directories alike.
func Rename(source, target, description string) Operation {
	return Operation{
		Type:        TypeRename,
		Source:      source,
		Target:      target,
		Description: description,
	}
}

// Package fileops provides the small set of file operations compkit needs:
// atomic writes for captured screenshots and the config file, and the checks
// applied before reading user-supplied catalog extension files.
//
// # Validating a file before reading it
//
// Combine the checks in this order:
//
//	if err := fileops.ValidateFileInDirectory(path, dir); err != nil {
//	    return fmt.Errorf("containment: %w", err)
//	}
//	if err := fileops.ValidateFileSizeLimit(path, 256*1024); err != nil {
//	    return fmt.Errorf("file size: %w", err)
//	}
//	content, _ := os.ReadFile(path)
//	if err := fileops.ValidateTextContent(string(content)); err != nil {
//	    return fmt.Errorf("content: %w", err)
//	}
//
// # Atomic writes
//
// AtomicWriteFile writes to a temporary file in the destination directory and
// renames it into place, so readers see either the old file or the new one.
package fileops

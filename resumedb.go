// Package resumedb provides a local, CLI-based resume archive.
// It walks a directory tree for resume documents, extracts their text,
// and stores one row per file in a SQLite database for later querying.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, pdf/, soffice/).
package resumedb

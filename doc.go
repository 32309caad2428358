// Package luckytemplate assembles directory trees in memory and materializes
// them to a filesystem.
//
// A caller builds a [Folder] through the builder API (optionally inside a
// scoped construction callback), then hands the finished tree to one of three
// engines: [Writer] to create it on disk, [Validator] to check an existing
// location against it, or [Folder.Snapshot] to produce a comparable
// structural fingerprint.
//
// File content is supplied through the [Source] capability: a literal value
// via [String] or [Bytes], a callback via [SourceFunc], or any type with a
// WriteContent method. The engines only ever call WriteContent; how the bytes
// are produced is the caller's business.
package luckytemplate

// Package fileset discovers the files a compliance check operates on. It
// selects files by recursive glob matching under one or more search paths,
// removes files under excluded directories, and can narrow the selection to
// files changed relative to the upstream tracking branch.
package fileset

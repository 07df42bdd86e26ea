// Package naming holds the file-name rules for tagged read pairs: locating
// a file's mate by role marker, stamping a tag into the second
// underscore-delimited token, and rejecting output names that two source
// files would both claim.
package naming

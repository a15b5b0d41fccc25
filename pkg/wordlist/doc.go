// Package wordlist reads username and restricted-word lists from files.
//
// Two formats are recognised by file extension. Files ending in .yaml or .yml
// must contain a top-level sequence of strings:
//
//	# restricted.yaml
//	- admin
//	- root
//
// Any other file is read as plain text with one entry per line. Blank lines
// and lines starting with '#' are skipped. Entries are trimmed of surrounding
// whitespace in both formats.
package wordlist

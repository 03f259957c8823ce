// Package report holds the tabular model shared by every comparison report,
// its tab-separated encoding, and the HTML rendering of that encoding.
package report

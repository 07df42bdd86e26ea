// Package fastq rewrites read files record by record.
//
// Records are four lines; the first line of each is a colon-delimited
// header such as
//
//	@M00123:239:000000000-AJ592:1:1101:14798:1432 1:N:0:1
//
// Only header lines are touched: field 0 becomes the instrument literal and
// field 9 becomes the pair's tag. Every other byte is copied through
// unchanged. Sources and destinations may be gzip-compressed.
package fastq

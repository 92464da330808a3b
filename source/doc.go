// Package source decodes documents into page inputs: page dimensions
// and positioned words ready for grid construction.
//
// Decoding is split across two libraries by what each does well:
// text fragments with positions come from github.com/ledongthuc/pdf,
// authoritative page dimensions from pdfcpu. Fragment positions arrive
// in PDF bottom-left-origin coordinates and leave here as top-left
// origin box centers, the only coordinate convention the rest of the
// module knows.
//
// [MergeWords] folds asynchronous OCR words into a page input before
// construction, preserving the rule that a page's word list is fixed
// and sorted exactly once.
package source

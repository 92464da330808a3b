// Package extract aggregates per-page extraction fragments into final
// output documents.
//
// # CSV
//
// [CSV] joins every page's comma-separated fragment behind one shared
// header row of Column0..ColumnN-1 headings, where N is the maximum
// column count across all pages; each page buckets its words at that
// width so rows from differently-shaped tables line up. Pages whose
// table caught no words are skipped. [WriteCSV] streams the same
// document through optional output encodings (UTF-8 with or without a
// byte order mark, Windows-1252, Latin-1) and optional CRLF row
// terminators, leaving newlines inside quoted cells untouched.
//
// # HTML
//
// [HTML] renders the same aggregation as an escaped standalone table
// document for previewing results in a browser.
package extract

// Package storage provides JSON-based persistence for crawled catalogs.
//
// Each crawl is saved as one catalog file in the data directory
// (catalog_<TERM>.json for a full crawl, catalog_<TERM>_<DEPT>.json for a
// single department). Saved catalogs can be reloaded so exports can run
// without refetching. The default data directory is ~/.local/share/testudo/.
package storage

// Package metalink defines the data shapes exchanged with metalink mirror
// descriptions.
//
// Only the structures live here; fetching and parsing metalink documents
// belongs to the download pipeline, which consumes these types.
package metalink

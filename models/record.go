package models

// RawRecord is one scraped listing as it arrives from the input source:
// a unique locator plus two unstructured text blobs. Everything else is
// recovered from these by the extract package.
type RawRecord struct {
	URL   string
	Title string
	Body  string
}

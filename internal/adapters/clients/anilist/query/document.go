package query

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed graphql/*.graphql
var documentFS embed.FS

// documents maps each operation to its GraphQL document, loaded once from the
// embedded graphql/ directory. File names are the operation names.
var documents = mustLoadDocuments(documentFS)

func mustLoadDocuments(fsys fs.FS) map[Operation]string {
	entries, err := fs.Glob(fsys, "graphql/*.graphql")
	if err != nil {
		panic(fmt.Sprintf("query: listing documents: %v", err))
	}

	docs := make(map[Operation]string, len(entries))
	for _, name := range entries {
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			panic(fmt.Sprintf("query: reading %s: %v", name, err))
		}
		op := Operation(strings.TrimSuffix(path.Base(name), ".graphql"))
		docs[op] = string(b)
	}
	return docs
}

// document returns the GraphQL document for op. Every registered operation
// has one; a missing document is a packaging error.
func document(op Operation) string {
	doc, ok := documents[op]
	if !ok {
		panic(fmt.Sprintf("query: no document for operation %q", op))
	}
	return doc
}

// Package guide embeds the KaTeX integration guide and the help topics
// served by `katexprobe help <topic>`.
package guide

import (
	"embed"
	"io/fs"
)

// Root is the directory of the topics inside FS
const Root = "docs"

// MainTopic is the topic shown by `katexprobe guide`
const MainTopic = "katex-renderer"

//go:embed docs
var docs embed.FS

// FS returns the embedded documentation
func FS() fs.FS {
	return docs
}

// Content returns the raw markdown of a topic file
func Content(name string) (string, error) {
	data, err := fs.ReadFile(docs, Root+"/"+name+".md")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Command minify produces the dist/ assets served in production: it walks
// templates/ and static/ and writes minified copies under dist/.
package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

var mediaTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
}

func main() {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)

	for _, dir := range []string{"templates", "static"} {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			mediaType, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]
			if !ok {
				return copyFile(path, filepath.Join("dist", path))
			}
			return minifyFile(m, path, filepath.Join("dist", path), mediaType)
		})
		if err != nil {
			log.Fatalf("Failed to minify %s: %v", dir, err)
		}
	}

	fmt.Println("Minified assets written to dist/")
}

func minifyFile(m *minify.M, srcPath, dstPath, mediaType string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	minified, err := m.Bytes(mediaType, src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(dstPath, minified, 0644); err != nil {
		return err
	}
	fmt.Printf("%s: %d bytes -> %d bytes\n", srcPath, len(src), len(minified))
	return nil
}

func copyFile(srcPath, dstPath string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(dstPath, src, 0644)
}

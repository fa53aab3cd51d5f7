package gnoss

import (
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

const ontologyExtension = ".owl"

// OntologyNameFromURL returns the last path segment of an ontology URL without
// its .owl extension. Plain names are returned trimmed.
func OntologyNameFromURL(ontologyURL string) string {
	name := strings.TrimSpace(ontologyURL)
	if parsed, err := url.Parse(name); err == nil && parsed.Path != "" {
		name = parsed.Path
	}
	name = path.Base(strings.TrimRight(name, "/"))
	if name == "." || name == "/" {
		return ""
	}
	return strings.TrimSuffix(name, ontologyExtension)
}

func OntologyNameWithExtension(ontologyURL string) string {
	name := OntologyNameFromURL(ontologyURL)
	if name == "" {
		return ""
	}
	return name + ontologyExtension
}

// BuildMainImageValue renders the main image property value, for example
// "[IMGPrincipal][240,120,]cover.jpg".
func BuildMainImageValue(name string, sizes []int) string {
	var b strings.Builder
	b.WriteString("[IMGPrincipal][")
	for _, size := range sizes {
		b.WriteString(strconv.Itoa(size))
		b.WriteByte(',')
	}
	b.WriteByte(']')
	b.WriteString(name)
	return b.String()
}

// NewLoadIdentifier names a batch of loads as {community}~{yyyy/M/d}~{H:m:s}.
func NewLoadIdentifier(community string, at time.Time) string {
	return fmt.Sprintf("%s~%d/%d/%d~%d:%d:%d",
		community, at.Year(), int(at.Month()), at.Day(), at.Hour(), at.Minute(), at.Second())
}

package gallery

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"os"
	"path"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// WriteSitemap writes a static sitemap.xml containing the gallery root plus
// one entry per manifest record, in manifest order.
func WriteSitemap(outPath, siteURL string, records []Record) error {
	urls := []sitemapURL{{Loc: buildURL(siteURL)}}
	for _, r := range records {
		urls = append(urls, sitemapURL{Loc: buildURL(siteURL, "images", r.File)})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	data, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return fmt.Errorf("gallery: encode sitemap: %w", err)
	}
	out := append([]byte(xml.Header), data...)
	out = append(out, '\n')
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("gallery: write sitemap: %w", err)
	}
	return nil
}

// buildURL joins a base URL with path segments. url.URL.String escapes the
// joined path, so filenames with spaces or umlauts come out valid.
func buildURL(base string, segments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(append([]string{"/", u.Path}, segments...)...)
	return u.String()
}

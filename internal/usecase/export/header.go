package export

import (
	"fmt"
	"net/url"
)

const (
	DefaultSiteName = "Transcrypt"
	DefaultSiteURL  = "https://transcrypt.web.app"

	headerLead = "Transcript for:"
)

// Site identifies the hosting site credited in every exported document
type Site struct {
	Name string
	URL  string
}

func (s Site) withDefaults() Site {
	if s.Name == "" {
		s.Name = DefaultSiteName
	}
	if s.URL == "" {
		s.URL = DefaultSiteURL
	}
	return s
}

// header holds the three blocks every exporter prints above the transcript
type header struct {
	Lead            string
	Title           string
	VideoURL        string
	AttributionText string
	SiteName        string
	SiteURL         string
}

// VideoURL returns the watch page for videoID
func VideoURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(videoID)
}

func newHeader(site Site, doc Document) header {
	site = site.withDefaults()
	return header{
		Lead:            headerLead,
		Title:           doc.Title,
		VideoURL:        VideoURL(doc.VideoID),
		AttributionText: "Transcript generated by ",
		SiteName:        site.Name,
		SiteURL:         site.URL,
	}
}

// attribution is the plain form of the credit line
func (h header) attribution() string {
	return fmt.Sprintf("%s%s (%s)", h.AttributionText, h.SiteName, h.SiteURL)
}

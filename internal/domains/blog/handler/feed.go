package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/shared/response"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// Feed handles GET /blogs/feed with an RSS 2.0 document of published posts.
func (h *BlogHandler) Feed(c *gin.Context) {
	published := true
	blogs, err := h.service.List(c.Request.Context(), &published)
	if err != nil {
		status, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, status, code, message)
		return
	}

	items := make([]rssItem, 0, len(blogs))
	for _, b := range blogs {
		postURL := fmt.Sprintf("%s/blog/%s", h.siteURL, b.Slug)
		items = append(items, rssItem{
			Title:       b.Title,
			Link:        postURL,
			Description: b.Excerpt,
			PubDate:     b.PublishedAt.Format(time.RFC1123Z),
			GUID:        postURL,
		})
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       h.siteName,
			Link:        h.siteURL,
			Description: "Latest blog posts",
			Items:       items,
		},
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.Status(http.StatusOK)
	_, _ = c.Writer.WriteString(xml.Header)
	_ = xml.NewEncoder(c.Writer).Encode(feed)
}

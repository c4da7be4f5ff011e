package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ramentaro/ramen-taro-api/internal/usecase"
	usecasecontract "github.com/ramentaro/ramen-taro-api/internal/usecase/contract"
)

// sitemapPageSize bounds how many posts the sitemap lists.
const sitemapPageSize = 500

// SiteHandler serves the crawler-facing site routes.
type SiteHandler struct {
	postUsecase usecase.IPostUseCase
	config      usecasecontract.IConfigProvider
}

func NewSiteHandler(postUsecase usecase.IPostUseCase, config usecasecontract.IConfigProvider) *SiteHandler {
	return &SiteHandler{
		postUsecase: postUsecase,
		config:      config,
	}
}

// SitemapHandler renders an XML sitemap of the published posts.
func (h *SiteHandler) SitemapHandler(cxt *gin.Context) {
	baseURL := strings.TrimRight(h.config.GetAppBaseURL(), "/")

	posts, _, _, _, err := h.postUsecase.GetPosts(cxt.Request.Context(), 1, sitemapPageSize)
	if err != nil {
		ErrorHandler(cxt, http.StatusInternalServerError, "Failed to build sitemap")
		return
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	fmt.Fprintf(&b, "  <url><loc>%s/</loc></url>\n", baseURL)
	fmt.Fprintf(&b, "  <url><loc>%s/blog</loc></url>\n", baseURL)
	for _, post := range posts {
		fmt.Fprintf(&b, "  <url><loc>%s/blog/%s</loc><lastmod>%s</lastmod></url>\n",
			baseURL, post.Slug, post.UpdatedAt.UTC().Format("2006-01-02"))
	}
	b.WriteString("</urlset>\n")

	cxt.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(b.String()))
}

// RobotsHandler renders robots.txt with a sitemap pointer.
func (h *SiteHandler) RobotsHandler(cxt *gin.Context) {
	baseURL := strings.TrimRight(h.config.GetAppBaseURL(), "/")
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", baseURL)
	cxt.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

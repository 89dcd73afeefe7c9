// Package wikipedia fetches article summaries, outgoing links and search
// results from the Wikipedia REST and Action APIs.
package wikipedia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/persistorai/wikigraph/internal/models"
)

// Defaults for Config fields left zero.
const (
	DefaultRESTURL     = "https://en.wikipedia.org/api/rest_v1"
	DefaultAPIURL      = "https://en.wikipedia.org/w/api.php"
	DefaultPageURL     = "https://en.wikipedia.org/wiki/"
	DefaultUserAgent   = "Wikipedia-Graph-Explorer/1.0 (Educational Purpose)"
	DefaultTimeout     = 5 * time.Second
	DefaultConcurrency = 8
	DefaultRatePerSec  = 20
	DefaultCacheSize   = 1000
	DefaultMaxRetries  = 2
	DefaultRetryBase   = 200 * time.Millisecond
)

// Config configures a Client.
type Config struct {
	RESTURL     string
	APIURL      string
	PageURL     string
	UserAgent   string
	Timeout     time.Duration
	Concurrency int
	RatePerSec  float64
	CacheSize   int
	MaxLinks    int
	MaxRetries  uint64
	RetryBase   time.Duration
}

func (c *Config) applyDefaults() {
	if c.RESTURL == "" {
		c.RESTURL = DefaultRESTURL
	}

	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}

	if c.PageURL == "" {
		c.PageURL = DefaultPageURL
	}

	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}

	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}

	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}

	if c.RatePerSec <= 0 {
		c.RatePerSec = DefaultRatePerSec
	}

	if c.CacheSize <= 0 {
		c.CacheSize = DefaultCacheSize
	}

	if c.MaxLinks <= 0 {
		c.MaxLinks = DefaultMaxLinks
	}

	if c.RetryBase <= 0 {
		c.RetryBase = DefaultRetryBase
	}
}

// Client is a content provider backed by Wikipedia. Returned articles are
// shared with the client's cache and must be treated as read-only.
type Client struct {
	cfg     Config
	http    *http.Client
	log     *logrus.Logger
	limiter *rate.Limiter
	breaker *circuitBreaker
	group   singleflight.Group

	articles  *lru.Cache[string, *models.ArticleContent]
	summaries *lru.Cache[string, *models.ArticleContent]
	searches  *lru.Cache[string, []models.SearchResult]
}

// New creates a Client. Zero Config fields take their defaults.
func New(cfg Config, log *logrus.Logger) (*Client, error) {
	cfg.applyDefaults()

	articles, err := lru.New[string, *models.ArticleContent](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating article cache: %w", err)
	}

	summaries, err := lru.New[string, *models.ArticleContent](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating summary cache: %w", err)
	}

	searches, err := lru.New[string, []models.SearchResult](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating search cache: %w", err)
	}

	return &Client{
		cfg:       cfg,
		http:      &http.Client{Timeout: cfg.Timeout},
		log:       log,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RatePerSec), max(1, int(cfg.RatePerSec))),
		breaker:   newCircuitBreaker(),
		articles:  articles,
		summaries: summaries,
		searches:  searches,
	}, nil
}

type summaryResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	PageID      int64  `json:"pageid"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title     string `json:"title"`
			PageID    int64  `json:"pageid"`
			Snippet   string `json:"snippet"`
			Size      int    `json:"size"`
			WordCount int    `json:"wordcount"`
		} `json:"search"`
	} `json:"query"`
}

// Status summarizes the provider for health checks.
type Status struct {
	Circuit        string `json:"circuit"`
	CachedArticles int    `json:"cached_articles"`
}

// Status reports the circuit breaker state and article cache occupancy.
func (c *Client) Status() Status {
	return Status{Circuit: c.breaker.stateName(), CachedArticles: c.articles.Len()}
}

// FetchOne returns the summary and outgoing links for title. It returns
// models.ErrArticleNotFound when the article does not exist.
func (c *Client) FetchOne(ctx context.Context, title string) (*models.ArticleContent, error) {
	if a, ok := c.articles.Get(title); ok {
		return a, nil
	}

	v, err, _ := c.group.Do("article:"+title, func() (any, error) {
		if a, ok := c.articles.Get(title); ok {
			return a, nil
		}

		return c.fetchArticle(ctx, title)
	})
	if err != nil {
		return nil, err
	}

	return v.(*models.ArticleContent), nil
}

// FetchSummaryOnly returns the article summary without links.
func (c *Client) FetchSummaryOnly(ctx context.Context, title string) (*models.ArticleContent, error) {
	if a, ok := c.articles.Get(title); ok {
		summary := *a
		summary.Links = nil
		summary.LinkCount = 0

		return &summary, nil
	}

	if a, ok := c.summaries.Get(title); ok {
		return a, nil
	}

	v, err, _ := c.group.Do("summary:"+title, func() (any, error) {
		a, err := c.fetchSummary(ctx, title)
		if err != nil {
			return nil, err
		}

		c.summaries.Add(title, a)

		return a, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*models.ArticleContent), nil
}

// FetchMany fetches titles concurrently, bounded by the configured
// concurrency. Each title gets its own deadline. Titles that fail are logged
// and left out of the result.
func (c *Client) FetchMany(ctx context.Context, titles []string) map[string]*models.ArticleContent {
	out := make(map[string]*models.ArticleContent, len(titles))

	var (
		mu sync.Mutex
		eg errgroup.Group
	)

	eg.SetLimit(c.cfg.Concurrency)

	seen := make(map[string]bool, len(titles))

	for _, title := range titles {
		if seen[title] {
			continue
		}

		seen[title] = true

		eg.Go(func() error {
			itemCtx, cancel := context.WithTimeout(ctx, c.itemTimeout())
			defer cancel()

			a, err := c.FetchOne(itemCtx, title)
			if err != nil {
				c.log.WithError(err).WithField("title", title).Warn("wikipedia: fetch failed")
				return nil
			}

			mu.Lock()
			out[title] = a
			mu.Unlock()

			return nil
		})
	}

	_ = eg.Wait()

	return out
}

// Search runs a full-text title search.
func (c *Client) Search(ctx context.Context, term string, limit int) ([]models.SearchResult, error) {
	key := term + ":" + strconv.Itoa(limit)
	if cached, ok := c.searches.Get(key); ok {
		return cached, nil
	}

	q := url.Values{
		"action":           {"query"},
		"format":           {"json"},
		"list":             {"search"},
		"srsearch":         {term},
		"srlimit":          {strconv.Itoa(limit)},
		"srprop":           {"snippet|size|wordcount"},
		"srenablerewrites": {"true"},
	}

	body, err := c.get(ctx, "search", c.cfg.APIURL+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", term, err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	results := make([]models.SearchResult, 0, len(resp.Query.Search))
	for _, r := range resp.Query.Search {
		results = append(results, models.SearchResult{
			Title:      r.Title,
			Summary:    plainText(r.Snippet),
			URL:        c.cfg.PageURL + pagePath(r.Title),
			ExternalID: externalID(r.PageID),
			WordCount:  r.WordCount,
			Size:       r.Size,
		})
	}

	c.searches.Add(key, results)

	return results, nil
}

func (c *Client) fetchArticle(ctx context.Context, title string) (*models.ArticleContent, error) {
	var (
		eg       errgroup.Group
		summary  *models.ArticleContent
		links    []string
		linksErr error
	)

	eg.Go(func() error {
		var err error
		summary, err = c.fetchSummary(ctx, title)

		return err
	})

	eg.Go(func() error {
		links, linksErr = c.fetchLinks(ctx, title)
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	summary.Links = links
	summary.LinkCount = len(links)

	if linksErr != nil {
		c.log.WithError(linksErr).WithField("title", title).Warn("wikipedia: links unavailable")
		summary.LinksIncomplete = true

		return summary, nil
	}

	c.articles.Add(title, summary)
	c.log.WithFields(logrus.Fields{"title": title, "links": len(links)}).Debug("wikipedia: article fetched")

	return summary, nil
}

func (c *Client) fetchSummary(ctx context.Context, title string) (*models.ArticleContent, error) {
	body, err := c.get(ctx, "summary", c.cfg.RESTURL+"/page/summary/"+pagePath(title))
	if err != nil {
		return nil, fmt.Errorf("fetching summary of %q: %w", title, err)
	}

	var resp summaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding summary of %q: %w", title, err)
	}

	a := &models.ArticleContent{
		Title:      resp.Title,
		Summary:    resp.Extract,
		URL:        resp.ContentURLs.Desktop.Page,
		ExternalID: externalID(resp.PageID),
	}

	if a.Title == "" {
		a.Title = title
	}

	if a.URL == "" {
		a.URL = c.cfg.PageURL + pagePath(title)
	}

	if resp.Thumbnail != nil {
		a.ImageURL = resp.Thumbnail.Source
	}

	return a, nil
}

func (c *Client) fetchLinks(ctx context.Context, title string) ([]string, error) {
	body, err := c.get(ctx, "html", c.cfg.RESTURL+"/page/html/"+pagePath(title))
	if err != nil {
		return nil, fmt.Errorf("fetching links of %q: %w", title, err)
	}

	return ExtractLinks(bytes.NewReader(body), c.cfg.MaxLinks), nil
}

// itemTimeout covers the summary and HTML requests of one article plus retries.
func (c *Client) itemTimeout() time.Duration {
	return c.cfg.Timeout * time.Duration(2+c.cfg.MaxRetries)
}

func externalID(id int64) *int64 {
	if id <= 0 {
		return nil
	}

	return &id
}

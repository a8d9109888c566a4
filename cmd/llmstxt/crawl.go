package main

import (
	"fmt"
	"time"

	"github.com/docsforge/llmstxt"
	"github.com/docsforge/llmstxt/crawl"
	"github.com/docsforge/llmstxt/fs"
	"github.com/docsforge/llmstxt/goquery"
	"github.com/docsforge/llmstxt/htmltomarkdown"
	llmshttp "github.com/docsforge/llmstxt/http"
	"github.com/docsforge/llmstxt/quality"
	"github.com/docsforge/llmstxt/readability"
	"github.com/docsforge/llmstxt/rod"
	llmsslog "github.com/docsforge/llmstxt/slog"
	"github.com/docsforge/llmstxt/trafilatura"
)

// CrawlCmd crawls one configured site (or all of them), persists the
// crawl index, and writes the assembled corpus and report files.
type CrawlCmd struct {
	Site    string        `arg:"" help:"Site key to crawl, or \"all\""`
	Force   bool          `short:"f" help:"Re-crawl pages already present in the index"`
	Browser bool          `help:"Enable browser rendering for JS-heavy frameworks"`
	Rate    float64       `default:"2" help:"Requests per second"`
	Burst   int           `default:"4" help:"Rate limiter burst capacity"`
	Timeout time.Duration `default:"20s" help:"Fetch timeout per page"`
	Out     string        `default:"." help:"Output directory for corpus and report files"`
}

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	config, err := fs.LoadConfig(deps.ConfigPath)
	if err != nil {
		return err
	}

	converter := htmltomarkdown.NewConverter()
	detector := goquery.NewDetector()
	limiter := crawl.NewLimiter(c.Rate, c.Burst)

	var fetcher llmstxt.Fetcher = llmshttp.NewFetcher(llmshttp.WithTimeout(c.Timeout))
	if c.Browser {
		browser, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = &crawl.CapabilityFetcher{
			HTTP:     fetcher,
			Browser:  browser,
			Detector: detector,
			Limiter:  limiter,
		}
	}
	fetcher = llmsslog.NewLoggingFetcher(fetcher, deps.Logger)
	defer fetcher.Close()

	crawler := &crawl.Crawler{
		Config:  config,
		Fetcher: fetcher,
		Links:   goquery.NewLinkExtractor(),
		Chain: &crawl.ExtractorChain{
			Structured: []llmstxt.ExtractStrategy{
				trafilatura.NewExtractor(converter),
				readability.NewExtractor(converter),
			},
			Manual: goquery.NewSelectorExtractor(),
		},
		Scorer:   quality.NewScorer(),
		Store:    fs.NewIndexStore(deps.IndexPath, fs.WithPretty(!deps.CI)),
		Sitemaps: llmshttp.NewSitemapService(nil),
		Limiter:  limiter,
		Logger:   deps.Logger,
	}

	var results []*crawl.RunResult
	if c.Site == "all" {
		results, err = crawler.CrawlAll(deps.Ctx, c.Force)
	} else {
		var result *crawl.RunResult
		result, err = crawler.CrawlSite(deps.Ctx, c.Site, c.Force)
		if result != nil {
			results = append(results, result)
		}
	}
	if err != nil {
		return err
	}

	assembler := &llmstxt.CorpusAssembler{
		Options: llmstxt.CorpusOptions{
			SortByQuality:    true,
			DiscloseFiltered: true,
		},
	}
	writer := fs.NewCorpusWriter(c.Out)

	for _, result := range results {
		in := &llmstxt.CorpusInput{
			SiteName:    result.SiteName,
			GeneratedAt: time.Now().UTC(),
			Pages:       result.Pages,
			Filtered:    result.Filtered,
			Errors:      result.Errors,
		}

		corpusPath, err := writer.WriteCorpus(result.SiteKey, assembler.Assemble(in))
		if err != nil {
			return err
		}
		reportPath, err := writer.WriteReport(result.SiteKey, assembler.Report(in))
		if err != nil {
			return err
		}

		fmt.Fprintf(deps.Stdout, "%s: %d pages (%d new, %d filtered, %d errors)\n",
			result.SiteKey, len(result.Pages), result.NewPages, len(result.Filtered), len(result.Errors))
		fmt.Fprintf(deps.Stdout, "  wrote %s\n  wrote %s\n", corpusPath, reportPath)
	}

	return nil
}

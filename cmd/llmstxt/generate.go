package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/docsforge/llmstxt"
	"github.com/docsforge/llmstxt/fs"
)

// GenerateCmd reassembles llms.txt corpora from the persisted crawl index
// without touching the network. Filtered pages and errors belong to crawl
// runs, not the index, so regenerated documents list pages only.
type GenerateCmd struct {
	Site    string `arg:"" help:"Site key to generate, or \"all\""`
	Out     string `default:"." help:"Output directory for corpus files"`
	MaxDocs int    `help:"Limit the corpus to the top N pages by quality"`
}

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	store := fs.NewIndexStore(deps.IndexPath, fs.WithPretty(!deps.CI))
	idx, err := store.Load(deps.Ctx)
	if err != nil {
		return err
	}

	var keys []string
	if c.Site == "all" {
		for key := range idx.Sites {
			keys = append(keys, key)
		}
		sort.Strings(keys)
	} else {
		keys = []string{c.Site}
	}

	assembler := &llmstxt.CorpusAssembler{
		Options: llmstxt.CorpusOptions{
			SortByQuality: true,
			MaxDocuments:  c.MaxDocs,
		},
	}
	writer := fs.NewCorpusWriter(c.Out)

	for _, key := range keys {
		site := idx.Site(key)
		if site == nil {
			return llmstxt.Errorf(llmstxt.ENOTFOUND, "site %q not present in index %s", key, deps.IndexPath)
		}

		in := &llmstxt.CorpusInput{
			SiteName:    site.Name,
			GeneratedAt: time.Now().UTC(),
			Pages:       site.Pages,
		}
		path, err := writer.WriteCorpus(key, assembler.Assemble(in))
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s: %d pages\n  wrote %s\n", key, len(site.Pages), path)
	}

	return nil
}

package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/pergola/pkg/domain"
)

// Corpus adapts a Loam repository into a source of renderable documents:
// one markdown file per retrieved passage, provenance and scoring in the
// frontmatter, the passage text as the body.
type Corpus struct {
	Repo *loam.TypedRepository[DocMetadata]
}

// New wraps an existing typed repository.
func New(repo *loam.TypedRepository[DocMetadata]) *Corpus {
	return &Corpus{
		Repo: repo,
	}
}

// Open initializes a corpus at dir.
// Strict mode keeps numeric frontmatter consistent across Loam's adapters;
// read-only because pergola never writes a corpus.
func Open(dir string) (*Corpus, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid corpus path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[DocMetadata](repo)), nil
}

// Documents loads every passage in the corpus, ordered by file ID. Corpora
// dumped by retrieval pipelines prefix file names with the retrieval rank
// (001-intro.md, 002-memory.md), so ID order is rank order.
func (c *Corpus) Documents(ctx context.Context) ([]domain.Document, error) {
	list, err := c.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	docs := make([]domain.Document, 0, len(list))
	for _, doc := range list {
		docs = append(docs, toDocument(doc.Data, doc.Content))
	}
	return docs, nil
}

// Get loads a single passage by its file ID. The extension is optional:
// "001-intro" and "001-intro.md" name the same passage, because Loam keys
// documents by extensionless ID.
func (c *Corpus) Get(ctx context.Context, id string) (domain.Document, error) {
	doc, err := c.Repo.Get(ctx, trimExtension(id))
	if err != nil {
		return domain.Document{}, fmt.Errorf("loam get failed for %s: %w", id, err)
	}
	return toDocument(doc.Data, doc.Content), nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}

// toDocument flattens typed frontmatter back into the open metadata mapping
// the renderer works with. Zero-valued known fields are omitted so a bare
// passage renders with the Unknown source fallback instead of empty strings.
func toDocument(meta DocMetadata, content string) domain.Document {
	md := make(map[string]any, len(meta.Extra)+4)
	for k, v := range meta.Extra {
		md[k] = v
	}
	if meta.Source != "" {
		md[domain.MetadataSource] = meta.Source
	}
	if meta.Title != "" {
		md["title"] = meta.Title
	}
	if meta.Score != 0 {
		md["score"] = meta.Score
	}
	if len(meta.Tags) > 0 {
		md["tags"] = meta.Tags
	}
	if len(md) == 0 {
		md = nil
	}
	return domain.Document{PageContent: content, Metadata: md}
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/loam"

	corpus "github.com/aretw0/pergola/pkg/adapters/loam"
)

func main() {
	targetDir := "demo-corpus"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	// Ensure dir exists
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Seeding demo corpus in: %s\n", targetDir)

	// Init Loam (No Versioning = pure file generation)
	repo, err := loam.Init(targetDir, loam.WithVersioning(false))
	if err != nil {
		panic(err)
	}

	typedRepo := loam.NewTypedRepository[corpus.DocMetadata](repo)
	ctx := context.TODO()

	// 1. A ranked passage with full provenance
	err = typedRepo.Save(ctx, &loam.DocumentModel[corpus.DocMetadata]{
		ID:      "001-adaptive-rag",
		Content: "Adaptive RAG routes each incoming query to the retrieval strategy it deserves: simple questions go straight to generation, while complex ones trigger multi-step retrieval with self-reflection.",
		Data: corpus.DocMetadata{
			Source: "https://arxiv.org/abs/2403.14403",
			Title:  "Adaptive-RAG",
			Score:  0.91,
			Tags:   []string{"rag", "routing"},
		},
	})
	check(err)

	// 2. Minimal provenance (renders with Source only)
	err = typedRepo.Save(ctx, &loam.DocumentModel[corpus.DocMetadata]{
		ID:      "002-corrective-rag",
		Content: "Corrective RAG grades every retrieved document for relevance before generation, discarding the irrelevant ones and rewriting the query for a web-search fallback.",
		Data: corpus.DocMetadata{
			Source: "https://arxiv.org/abs/2401.15884",
		},
	})
	check(err)

	// 3. A passage long enough to trip the content preview ellipsis
	long := strings.Repeat("Self-reflective retrieval loops critique their own drafts before answering. ", 10)
	err = typedRepo.Save(ctx, &loam.DocumentModel[corpus.DocMetadata]{
		ID:      "003-self-rag-notes",
		Content: long,
		Data: corpus.DocMetadata{
			Source: "notes/self-rag.md",
			Score:  0.55,
		},
	})
	check(err)

	fmt.Println("Done. Try: pergola docs", targetDir)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

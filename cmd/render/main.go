// Command render fetches a resume from the store and writes the rendered
// document to disk as HTML, optionally exporting a PDF through headless
// Chrome.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"resume-builder/internal/config"
	"resume-builder/internal/preview"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	id := flag.String("id", "", "resume document id")
	out := flag.String("out", "resume.html", "output path")
	pdf := flag.Bool("pdf", false, "also export a PDF next to the HTML")
	flag.Parse()

	if *id == "" {
		log.Fatal("usage: render -id <documentId> [-out resume.html] [-pdf]")
	}

	cfg := config.Load()
	sess := usecase.NewSession(cfg, nil)

	ctx := context.Background()
	rec, err := sess.Store.GetByID(ctx, *id)
	if err != nil {
		log.Fatalf("fetching resume: %v", err)
	}

	html, err := preview.RenderHTML(preview.Build(rec.Resume))
	if err != nil {
		log.Fatalf("rendering resume: %v", err)
	}
	if err := os.WriteFile(*out, []byte(html), 0o644); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	log.Printf("wrote %s", *out)

	if *pdf {
		renderer := infra.NewChromedpRenderer()
		buf, err := renderer.RenderHTMLToPDF(ctx, html)
		if err != nil {
			log.Fatalf("exporting pdf: %v", err)
		}
		pdfPath := *out + ".pdf"
		if err := os.WriteFile(pdfPath, buf, 0o644); err != nil {
			log.Fatalf("writing %s: %v", pdfPath, err)
		}
		log.Printf("wrote %s", pdfPath)
	}
}

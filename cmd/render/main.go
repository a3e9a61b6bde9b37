// Command render is an offline renderer: it reads a resume document from a
// JSON file (canonical or raw collaborator output) and writes the rendered
// HTML page to a file or stdout, without starting the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"resumeforge/internal/config"
	"resumeforge/internal/exporter"
	"resumeforge/internal/normalizer"
	"resumeforge/internal/templates"
	"resumeforge/pkg/models"
)

func main() {
	var (
		templateID = flag.String("template", "modern-professional", "template id to render with")
		inputPath  = flag.String("in", "", "path to a JSON file holding a render request, a canonical document, or raw collaborator output")
		outputPath = flag.String("out", "", "output file (default stdout)")
		export     = flag.Bool("export", false, "embed the PDF conversion script in the output")
		filename   = flag.String("filename", "", "suggested PDF filename when exporting")
		list       = flag.Bool("list", false, "list available templates and exit")
	)
	flag.Parse()

	reg := templates.NewRegistry()

	if *list {
		for _, entry := range reg.All() {
			fmt.Printf("%-22s %-14s %s\n", entry.ID, entry.Category, entry.Name)
		}
		return
	}

	if *inputPath == "" {
		log.Fatal("missing -in: provide a JSON resume file")
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	req, err := decodeRequest(data)
	if err != nil {
		log.Fatalf("decode input: %v", err)
	}
	req.TemplateID = *templateID

	doc, err := exporter.ResolveDocument(req, normalizer.New())
	if err != nil {
		log.Fatalf("resolve document: %v", err)
	}

	var html string
	if *export {
		cfg, err := config.LoadConfig(os.Getenv("CONFIG_PATH"))
		if err != nil {
			log.Fatalf("load configuration: %v", err)
		}
		html, _, err = exporter.ExportPDF(context.Background(), cfg, reg, *templateID, doc, *filename)
		if err != nil {
			log.Fatalf("export: %v", err)
		}
	} else {
		html, err = exporter.BuildHTML(context.Background(), reg, *templateID, doc)
		if err != nil {
			log.Fatalf("render: %v", err)
		}
	}

	if *outputPath == "" {
		fmt.Print(html)
		return
	}
	if err := os.WriteFile(*outputPath, []byte(html), 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

// decodeRequest accepts three input shapes: a full render request, a bare
// canonical document, or bare raw collaborator output. Canonical documents
// are recognized by their personalInfo key; anything else is treated as raw.
func decodeRequest(data []byte) (*models.RenderResumeRequest, error) {
	var req models.RenderResumeRequest
	if err := json.Unmarshal(data, &req); err == nil && (req.Resume != nil || req.Raw != nil) {
		return &req, nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	if _, ok := probe["personalInfo"]; ok {
		var doc models.ResumeDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return &models.RenderResumeRequest{Resume: &doc}, nil
	}

	var raw models.RawResumeDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return &models.RenderResumeRequest{Raw: &raw}, nil
}

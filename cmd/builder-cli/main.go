package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go-tv-builder/internal/library"
	"go-tv-builder/internal/pagemanager"
	"go-tv-builder/internal/storage"
	"go-tv-builder/internal/tvconfig"
	"go-tv-builder/pkg/fsutils"
)

const dataDir = ".tvbuilder_data"

func main() {
	fmt.Println("TV Builder CLI")

	projectRoot, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting working directory: %v", err)
	}

	store, err := storage.NewJSONStore(filepath.Join(projectRoot, dataDir))
	if err != nil {
		log.Fatalf("Error initializing storage: %v", err)
	}
	manager := pagemanager.NewManager(store, nil)
	fmt.Printf("Using data path: %s\n", store.GetBasePath())

	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	createCmd := flag.NewFlagSet("create", flag.ExitOnError)
	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)
	renderCmd := flag.NewFlagSet("render", flag.ExitOnError)
	exportTVCmd := flag.NewFlagSet("export-tv", flag.ExitOnError)
	exportWebCmd := flag.NewFlagSet("export-web", flag.ExitOnError)

	createTitle := createCmd.String("title", "", "Title of the page to create (required)")
	createSlug := createCmd.String("slug", "", "Custom slug for the page (optional)")
	createAuthor := createCmd.String("author", "", "Author name (optional)")

	deleteSlug := deleteCmd.String("slug", "", "Slug of the page to delete (required)")
	deleteForce := deleteCmd.Bool("force", false, "Delete without confirmation")

	renderSlug := renderCmd.String("slug", "", "Slug of the page to render (required)")
	renderOut := renderCmd.String("out", "", "Write the HTML fragment to this file instead of stdout")

	exportTVOut := exportTVCmd.String("out", "", "Output directory (default: current directory)")

	exportWebID := exportWebCmd.String("id", "", "ID of the web template to export (required)")
	exportWebOut := exportWebCmd.String("out", "", "Output directory (default: current directory)")

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "list":
		listCmd.Parse(os.Args[2:])
		handleListPages(manager)
	case "create":
		createCmd.Parse(os.Args[2:])
		handleCreatePage(manager, *createTitle, *createSlug, *createAuthor)
	case "delete":
		deleteCmd.Parse(os.Args[2:])
		if *deleteSlug == "" {
			fmt.Println("Error: -slug flag is required for delete command")
			deleteCmd.Usage()
			os.Exit(1)
		}
		handleDeletePage(manager, *deleteSlug, *deleteForce)
	case "render":
		renderCmd.Parse(os.Args[2:])
		if *renderSlug == "" {
			fmt.Println("Error: -slug flag is required for render command")
			renderCmd.Usage()
			os.Exit(1)
		}
		handleRenderPage(manager, *renderSlug, *renderOut)
	case "export-tv":
		exportTVCmd.Parse(os.Args[2:])
		handleExportTV(*exportTVOut)
	case "export-web":
		exportWebCmd.Parse(os.Args[2:])
		if *exportWebID == "" {
			fmt.Println("Error: -id flag is required for export-web command")
			exportWebCmd.Usage()
			os.Exit(1)
		}
		handleExportWeb(*exportWebID, *exportWebOut)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
	}

	fmt.Println("\nCLI finished.")
}

func printUsage() {
	fmt.Println("\nUsage: builder-cli <command> [options]")
	fmt.Println("Available commands:")
	fmt.Println("  list          List all known pages")
	fmt.Println("  create -title <title> [-slug <slug>] [-author <name>]")
	fmt.Println("                Create a new page with empty content")
	fmt.Println("  delete -slug <slug> [--force]")
	fmt.Println("                Delete a page")
	fmt.Println("  render -slug <slug> [-out <file>]")
	fmt.Println("                Render a page's content to HTML")
	fmt.Println("  export-tv [-out <dir>]")
	fmt.Println("                Export the default TV configuration as JSON")
	fmt.Println("  export-web -id <template-id> [-out <dir>]")
	fmt.Println("                Export a web template bundle as JSON")
}

func handleListPages(manager *pagemanager.PageManager) {
	fmt.Println("\nListing pages...")
	pages, err := manager.ListPages()
	if err != nil {
		log.Fatalf("Error listing pages: %v", err)
	}
	if len(pages) == 0 {
		fmt.Println("No pages found.")
		return
	}
	fmt.Println("Found pages:")
	for _, p := range pages {
		fmt.Printf("- Slug: %s\n  Title: %s\n  Status: %s\n  Author: %s\n  Views: %d\n\n",
			p.Slug, p.Title, p.Status, p.Author, p.Views)
	}
}

func handleCreatePage(manager *pagemanager.PageManager, title, slug, author string) {
	page, err := manager.CreatePage(title, slug, author)
	if err != nil {
		log.Fatalf("Error creating page: %v", err)
	}
	fmt.Printf("Successfully created page '%s' with slug '%s'\n", page.Title, page.Slug)
}

func askForConfirmation(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("%s [y/N]: ", prompt)
		response, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("Error reading confirmation: %v", err)
		}
		response = strings.ToLower(strings.TrimSpace(response))
		if response == "y" || response == "yes" {
			return true
		} else if response == "n" || response == "no" || response == "" {
			return false
		}
	}
}

func handleDeletePage(manager *pagemanager.PageManager, slug string, force bool) {
	if !force && !askForConfirmation(fmt.Sprintf("Delete page '%s'?", slug)) {
		fmt.Println("Operation cancelled.")
		return
	}
	if err := manager.DeletePage(slug); err != nil {
		log.Fatalf("Error deleting page: %v", err)
	}
	fmt.Printf("Deleted page '%s'\n", slug)
}

func handleRenderPage(manager *pagemanager.PageManager, slug, outFile string) {
	html, err := manager.RenderPage(slug)
	if err != nil {
		log.Fatalf("Error rendering page: %v", err)
	}
	if outFile == "" {
		fmt.Println("\n--- Rendered HTML ---")
		fmt.Println(html)
		fmt.Println("--- End ---")
		return
	}
	if err := fsutils.WriteToFile(outFile, []byte(html)); err != nil {
		log.Fatalf("Error writing output file: %v", err)
	}
	fmt.Printf("Rendered page written to %s\n", outFile)
}

func handleExportTV(outDir string) {
	out, err := tvconfig.ExportJSON(tvconfig.Default())
	if err != nil {
		log.Fatalf("Error exporting TV configuration: %v", err)
	}
	path := filepath.Join(outDir, "android-tv-template.json")
	if err := fsutils.WriteToFile(path, []byte(out)); err != nil {
		log.Fatalf("Error writing export file: %v", err)
	}
	fmt.Printf("TV configuration exported to %s\n", path)
}

func handleExportWeb(id, outDir string) {
	weblib := library.NewWebLibrary(nil)
	t, err := weblib.Get(id)
	if err != nil {
		log.Fatalf("Error loading web template: %v", err)
	}
	out, err := weblib.ExportBundle(id)
	if err != nil {
		log.Fatalf("Error exporting web template: %v", err)
	}
	path := filepath.Join(outDir, t.ExportFilename())
	if err := fsutils.WriteToFile(path, []byte(out)); err != nil {
		log.Fatalf("Error writing export file: %v", err)
	}
	fmt.Printf("Web template '%s' exported to %s\n", t.Name, path)
}

package main

import (
	"birth-chart-service/internal/config"
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// The raw.githubusercontent.com mirror does not list directories, so
// every file is fetched by its full path.
const baseURL = "https://raw.githubusercontent.com/aloistr/swisseph/master/ephe/"

// 600-year blocks covering 1 BCE - 5999 CE. Planets (sepl) and the
// Moon (semo) ship as separate files.
var blocks = []string{"00", "06", "12", "18", "24", "30", "36", "42", "48", "54"}

func main() {
	strict := flag.Bool("strict", false, "exit non-zero if any ephemeris file is missing at the source")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	outDir := config.Get("SWEPHE_PATH", "ephe")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("create output dir %q: %v", outDir, err)
	}

	client := &http.Client{Timeout: 60 * time.Second}

	var files []string
	for _, b := range blocks {
		files = append(files, fmt.Sprintf("sepl_%s.se1", b), fmt.Sprintf("semo_%s.se1", b))
	}

	var missing []string
	for _, name := range files {
		dest := filepath.Join(outDir, name)

		if ok := fetch(client, baseURL+name, dest); ok {
			continue
		}

		// Some distributions only carry compressed files.
		gzDest := dest + ".gz"
		if ok := fetch(client, baseURL+name+".gz", gzDest); ok {
			if err := gunzip(gzDest, dest); err != nil {
				log.Printf("[fail] decompress %s: %v", name, err)
				missing = append(missing, name)
			}
			continue
		}

		missing = append(missing, name)
	}

	if len(missing) > 0 {
		log.Println("Missing files (not found at source):")
		for _, name := range missing {
			log.Printf(" - %s", name)
		}
		if *strict {
			log.Fatal("aborting: --strict set and files are missing")
		}
		log.Println("Continuing anyway (charts for years needing these files will fail).")
	}

	log.Printf("Ephemeris ready in: %s", outDir)
}

// fetch downloads url to dest, skipping files that already exist with
// content. Failures are logged and reported, never fatal here.
func fetch(client *http.Client, url, dest string) bool {
	if info, err := os.Stat(dest); err == nil && info.Size() > 0 {
		log.Printf("[skip] %s", dest)
		return true
	}

	log.Printf("[get ] %s", url)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		log.Printf("[miss] %s (%v)", url, err)
		return false
	}
	req.Header.Set("User-Agent", "birth-chart-service/1.0")

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[miss] %s (%v)", url, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[miss] %s (status %d)", url, resp.StatusCode)
		return false
	}

	if err := writeFile(dest, resp.Body); err != nil {
		log.Printf("[miss] %s (%v)", url, err)
		return false
	}

	return true
}

func writeFile(dest string, r io.Reader) error {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dest)
		return err
	}

	return f.Close()
}

func gunzip(gzPath, outPath string) error {
	log.Printf("[gunz] %s -> %s", filepath.Base(gzPath), filepath.Base(outPath))

	in, err := os.Open(gzPath)
	if err != nil {
		return err
	}
	defer in.Close()

	zr, err := gzip.NewReader(in)
	if err != nil {
		return err
	}
	defer zr.Close()

	if err := writeFile(outPath, zr); err != nil {
		return err
	}

	return os.Remove(gzPath)
}

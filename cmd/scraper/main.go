package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"resume-match/internal/domain/skill"
	"resume-match/internal/scraper"
)

func main() {
	url := flag.String("url", "", "job posting URL to scrape")
	timeout := flag.Duration("timeout", 30*time.Second, "scrape timeout")
	skillsOnly := flag.Bool("skills", false, "print only the extracted skills")
	flag.Parse()

	u := strings.TrimSpace(*url)
	if u == "" {
		log.Fatalf("provide -url")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	js := scraper.NewJobScraper(log.Default())
	text, err := js.Scrape(ctx, u)
	if err != nil {
		log.Fatalf("scrape failed: %v", err)
	}

	found := skill.Extract(text)
	if !*skillsOnly {
		fmt.Println(text)
		fmt.Println()
	}
	fmt.Printf("skills (%d): %s\n", found.Len(), strings.Join(found.Names(), ", "))
}

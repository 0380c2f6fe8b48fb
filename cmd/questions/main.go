package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/JoeMcCleery/questions"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] corpus\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Answers a query against the corpus directory (or -db store)")
	fmt.Fprintln(os.Stderr, "and prints the best-matching sentence(s).")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	files := flag.Int("files", 1, "number of top documents to draw sentences from")
	matches := flag.Int("matches", 1, "number of sentences to print")
	stem := flag.Bool("stem", false, "stem tokens with the Snowball English stemmer")
	dbPath := flag.String("db", "", "load the corpus from this SQLite store instead of a directory")
	serve := flag.String("serve", "", "serve /ask on this address instead of prompting")
	flag.Usage = usage
	flag.Parse()

	docs, err := loadDocs(*dbPath, flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	tok := questions.NewTokenizer(nil)
	tok.Stem = *stem
	engine, err := questions.NewEngine(docs, tok, nil)
	if err != nil {
		log.Fatal(err)
	}

	if *serve != "" {
		log.Println("Listening on", *serve)
		log.Fatal(http.ListenAndServe(*serve, questions.NewMux(engine)))
	}

	fmt.Print("Query: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Fatal(err)
	}

	hits, err := engine.Answer(strings.TrimSpace(line), *files, *matches)
	if err != nil {
		log.Fatal(err)
	}
	for _, h := range hits {
		fmt.Println(h.Text)
	}
}

// loadDocs resolves the corpus source. With -db set, the store is used
// (importing the directory argument first, when one is given); otherwise
// the directory argument is required.
func loadDocs(dbPath, dir string) (map[string]string, error) {
	if dbPath == "" {
		if dir == "" {
			usage()
			os.Exit(2)
		}
		return questions.LoadCorpus(dir)
	}

	store, err := questions.OpenSQLiteCorpus(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if dir != "" {
		if err := store.ImportDir(dir); err != nil {
			return nil, err
		}
	}
	return store.Load()
}

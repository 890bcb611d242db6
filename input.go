package aoc

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Lines returns every line of r without line terminators.
func Lines(r io.Reader) []string {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(nil, 1<<20)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
	return lines
}

// LineBlocks groups lines into blocks separated by blank lines. Runs of
// blank lines produce empty blocks.
func LineBlocks(lines []string) [][]string {
	var blocks [][]string
	var cur []string
	for _, line := range lines {
		if line == "" {
			blocks = append(blocks, cur)
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

var baseURL = "https://adventofcode.com"

const defaultUserAgent = "github.com/aoc-archive/aoc"

// inputDir is where fetched puzzle files are cached.
func inputDir() string {
	return Or(os.Getenv("AOC_INPUT_DIR"), "inputs")
}

var session = sync.OnceValue(func() string {
	if k := os.Getenv("AOC_KEY"); k != "" {
		return strings.TrimSpace(k)
	}
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

// FetchInput returns the puzzle input for the given day, downloading it on
// first use.
func FetchInput(year, day int) []byte {
	return fileOrFetch(
		filepath.Join(inputDir(), fmt.Sprint(year), fmt.Sprintf("day%d", day)),
		fmt.Sprintf("%s/%d/day/%d/input", baseURL, year, day),
	)
}

func request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	// Requested by the site owner.
	req.Header.Set("User-Agent", Or(strings.TrimSpace(os.Getenv("AOC_USER_AGENT")), defaultUserAgent))
	return req
}

func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	log.Printf("fetching %s", url)
	res := MustGet(http.DefaultClient.Do(request("GET", url, nil)))
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Fatalf("bad status fetching %s: %v", url, res.Status)
	}
	return MustGet(io.ReadAll(res.Body))
}

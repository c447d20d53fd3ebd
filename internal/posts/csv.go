package posts

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

var csvHeader = []string{"id", "title", "body"}

// WriteCSV renders the listing with a header row and one row per post.
func WriteCSV(w io.Writer, listing []Post) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("posts: write csv header: %w", err)
	}
	for _, p := range listing {
		if err := cw.Write([]string{strconv.Itoa(p.ID), p.Title, p.Body}); err != nil {
			return fmt.Errorf("posts: write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the listing to path, replacing any existing file.
func SaveCSV(path string, listing []Post) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("posts: create %s: %w", path, err)
	}

	if err := WriteCSV(f, listing); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

package cli

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ericyuu1/NER/corpus"
)

const hfDataURL = "https://huggingface.co/datasets/Ericyuu1/NER/resolve/main/data.tar.gz"

func (c *CLI) newDataCommand() *cobra.Command {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Manage training corpora (download, inspect)",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	var downloadDataFolder string
	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download training corpora from Hugging Face",
		Example: `  ner data download
  ner data download --data-folder data`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dataDownload(downloadDataFolder)
		},
	}
	downloadCmd.Flags().StringVar(&downloadDataFolder, "data-folder", "data", "Destination folder for training corpora")

	statsCmd := &cobra.Command{
		Use:   "stats <corpus>",
		Short: "Print sentence, token and tag counts for a corpus file",
		Args:  cobra.ExactArgs(1),
		Example: `  ner data stats data/train.conll`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dataStats(args[0])
		},
	}

	dataCmd.AddCommand(downloadCmd, statsCmd)
	return dataCmd
}

func dataDownload(dataFolder string) error {
	slog.Info("Downloading training corpora", "url", hfDataURL)
	resp, err := http.Get(hfDataURL)
	if err != nil {
		return fmt.Errorf("download data: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download data: HTTP %d", resp.StatusCode)
	}

	if err := os.RemoveAll(dataFolder); err != nil {
		return fmt.Errorf("remove existing %s: %w", dataFolder, err)
	}

	gr, err := gzip.NewReader(resp.Body)
	if err != nil {
		return fmt.Errorf("gzip reader: %w", err)
	}
	defer func() { _ = gr.Close() }()

	tr := tar.NewReader(gr)
	count := 0
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read tar: %w", err)
		}

		target := hdr.Name
		if strings.HasPrefix(target, "data/") {
			target = dataFolder + target[len("data"):]
		}
		target = filepath.Clean(target)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("create dir %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("create parent dir: %w", err)
			}
			f, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create file %s: %w", target, err)
			}
			if _, err := io.Copy(f, tr); err != nil {
				_ = f.Close()
				return fmt.Errorf("write file %s: %w", target, err)
			}
			_ = f.Close()
			count++
		}
	}
	slog.Info("Training corpora extracted", "files", count, "folder", dataFolder)
	return nil
}

func dataStats(path string) error {
	sentences, err := corpus.Read(path)
	if err != nil {
		return err
	}

	tokens := 0
	entities := 0
	tagCounts := make(map[string]int)
	for i := range sentences {
		tokens += sentences[i].Len()
		entities += len(sentences[i].Chunks)
		for _, tag := range sentences[i].BIOTags() {
			tagCounts[tag]++
		}
	}

	fmt.Printf("Sentences: %d\n", len(sentences))
	fmt.Printf("Tokens:    %d\n", tokens)
	fmt.Printf("Entities:  %d\n", entities)

	tags := make([]string, 0, len(tagCounts))
	for tag := range tagCounts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if tagCounts[tags[i]] != tagCounts[tags[j]] {
			return tagCounts[tags[i]] > tagCounts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	fmt.Printf("\n%8s  %8s\n", "tag", "count")
	for _, tag := range tags {
		fmt.Printf("%8s  %8d\n", tag, tagCounts[tag])
	}
	return nil
}

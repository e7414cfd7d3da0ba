package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/workboard/wb/pkg/fixtures"
)

// LoadCorpusFile reads a fixture corpus from a YAML, JSON or JSONC file.
// The format is chosen by extension; .json files may carry comments and
// trailing commas. Result sets and the detail seed fall back to the
// built-in ones when the file leaves them out.
func LoadCorpusFile(path string) (fixtures.Corpus, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fixtures.Corpus{}, fmt.Errorf("no fixtures file found at %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fixtures.Corpus{}, fmt.Errorf("failed to read fixtures file: %w", err)
	}

	corpus, err := ParseCorpus(data, filepath.Ext(path))
	if err != nil {
		return fixtures.Corpus{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return corpus, nil
}

// ParseCorpus decodes corpus data. ext selects the decoder: ".yaml" and
// ".yml" use YAML, anything else is treated as JSON with comments.
func ParseCorpus(data []byte, ext string) (fixtures.Corpus, error) {
	var corpus fixtures.Corpus

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &corpus); err != nil {
			return fixtures.Corpus{}, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		stripped := jsonc.ToJSON(data)
		decoder := json.NewDecoder(bytes.NewReader(stripped))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&corpus); err != nil {
			return fixtures.Corpus{}, fmt.Errorf("invalid JSON: %w", err)
		}
	}

	if len(corpus.Workspaces) == 0 {
		return fixtures.Corpus{}, fmt.Errorf("%w: no workspaces defined", ErrInvalidCorpus)
	}
	if corpus.ResultSets == nil {
		corpus.ResultSets = fixtures.ResultSets()
	}
	if corpus.Detail.Comments == nil && corpus.Detail.History == nil {
		corpus.Detail = fixtures.Detail()
	}

	return corpus, nil
}

// LoadStore loads a fixtures file and builds a store from it. An empty path
// selects the built-in corpus.
func LoadStore(path string) (*Store, error) {
	if path == "" {
		return NewStore(fixtures.Default())
	}
	corpus, err := LoadCorpusFile(path)
	if err != nil {
		return nil, err
	}
	return NewStore(corpus)
}

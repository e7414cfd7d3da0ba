package analysis

import (
	"sort"

	"github.com/workboard/wb/pkg/model"
)

// TagStats counts how a tag is used
type TagStats struct {
	Tag     string                     `json:"tag"`
	Total   int                        `json:"total"`
	Open    int                        `json:"open"`
	Closed  int                        `json:"closed"`
	ByType  map[model.WorkItemType]int `json:"by_type"`
	ItemIDs []string                   `json:"item_ids"`
}

// TagExtraction is the result of scanning items for tags
type TagExtraction struct {
	Tags      []string             `json:"tags"` // unique, sorted
	Stats     map[string]*TagStats `json:"stats"`
	ItemCount int                  `json:"item_count"`
	Untagged  int                  `json:"untagged"`
	TopTags   []string             `json:"top_tags"` // by usage, ties alphabetical
}

// ExtractTags collects unique tags with per-tag statistics. Empty tags are
// skipped and a tag repeated on one item counts once.
func ExtractTags(items []model.WorkItem) TagExtraction {
	result := TagExtraction{
		Stats:   make(map[string]*TagStats),
		Tags:    []string{},
		TopTags: []string{},
	}
	if len(items) == 0 {
		return result
	}
	result.ItemCount = len(items)

	for _, item := range items {
		if len(item.Tags) == 0 {
			result.Untagged++
		}

		seen := make(map[string]bool, len(item.Tags))
		for _, tag := range item.Tags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true

			stats, exists := result.Stats[tag]
			if !exists {
				stats = &TagStats{Tag: tag, ByType: make(map[model.WorkItemType]int)}
				result.Stats[tag] = stats
			}
			stats.Total++
			stats.ItemIDs = append(stats.ItemIDs, item.ID)
			if item.Status.IsClosed() {
				stats.Closed++
			} else {
				stats.Open++
			}
			if item.Type != "" {
				stats.ByType[item.Type]++
			}
		}
	}

	for tag := range result.Stats {
		result.Tags = append(result.Tags, tag)
	}
	sort.Strings(result.Tags)
	result.TopTags = sortTagsByCount(result.Stats)
	return result
}

func sortTagsByCount(stats map[string]*TagStats) []string {
	tags := make([]string, 0, len(stats))
	for tag := range stats {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if stats[tags[i]].Total != stats[tags[j]].Total {
			return stats[tags[i]].Total > stats[tags[j]].Total
		}
		return tags[i] < tags[j]
	})
	return tags
}

// TagCooccurrence counts, for each pair of tags, how many items carry both
func TagCooccurrence(items []model.WorkItem) map[string]map[string]int {
	cooc := make(map[string]map[string]int)
	for _, item := range items {
		for i, a := range item.Tags {
			for _, b := range item.Tags[i+1:] {
				if a == b || a == "" || b == "" {
					continue
				}
				if cooc[a] == nil {
					cooc[a] = make(map[string]int)
				}
				if cooc[b] == nil {
					cooc[b] = make(map[string]int)
				}
				cooc[a][b]++
				cooc[b][a]++
			}
		}
	}
	return cooc
}

// TagPair is two tags carried together by Count items. A sorts before B.
type TagPair struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Count int    `json:"count"`
}

// TopTagPairs flattens TagCooccurrence into pairs, most frequent first,
// ties broken alphabetically.
func TopTagPairs(items []model.WorkItem) []TagPair {
	var pairs []TagPair
	for a, row := range TagCooccurrence(items) {
		for b, n := range row {
			if a < b {
				pairs = append(pairs, TagPair{A: a, B: b, Count: n})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

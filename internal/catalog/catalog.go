package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultGuessing is the guessing floor assigned to items that omit c.
const DefaultGuessing = 0.25

// Provider supplies items keyed by ID and grouped by topic.
type Provider interface {
	// Item returns the item with the given ID.
	Item(id string) (Item, bool)

	// ByTopic returns all items for a topic, in load order.
	ByTopic(topic string) []Item

	// Topics returns all topics with at least one item, sorted.
	Topics() []string
}

// Catalog is an in-memory Provider.
type Catalog struct {
	byID    map[string]Item
	byTopic map[string][]Item
}

// New builds a Catalog from a slice of items.
// Duplicate IDs are a configuration error.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		byID:    make(map[string]Item, len(items)),
		byTopic: make(map[string][]Item),
	}
	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("item with empty name (topic %q)", it.Topic)
		}
		if _, exists := c.byID[it.ID]; exists {
			return nil, fmt.Errorf("duplicate item name: %q", it.ID)
		}
		if it.A <= 0 {
			return nil, fmt.Errorf("item %q: discrimination must be > 0, got %v", it.ID, it.A)
		}
		if it.C < 0 || it.C >= 1 {
			return nil, fmt.Errorf("item %q: guessing must be in [0, 1), got %v", it.ID, it.C)
		}
		c.byID[it.ID] = it
		c.byTopic[it.Topic] = append(c.byTopic[it.Topic], it)
	}
	return c, nil
}

func (c *Catalog) Item(id string) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

func (c *Catalog) ByTopic(topic string) []Item {
	items := c.byTopic[topic]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func (c *Catalog) Topics() []string {
	topics := make([]string, 0, len(c.byTopic))
	for t := range c.byTopic {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// bankFile is the on-disk shape of a question bank file: an optional
// file-level topic and a list of items.
type bankFile struct {
	Topic     string     `json:"topic"`
	Questions []bankItem `json:"questions"`
}

// bankItem shadows the guessing parameter with a pointer so an absent c
// can be told apart from an explicit 0.
type bankItem struct {
	Item
	C *float64 `json:"c"`
}

// LoadDir loads every *.json question bank under dir into a Catalog.
// Items missing a topic inherit the file-level topic; items missing a
// guessing parameter get DefaultGuessing.
func LoadDir(dir string) (*Catalog, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob question banks: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no question bank files in %s", dir)
	}
	sort.Strings(paths)

	var items []Item
	for _, path := range paths {
		loaded, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		items = append(items, loaded...)
	}
	return New(items)
}

func loadFile(path string) ([]Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank %s: %w", path, err)
	}

	var bank bankFile
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, fmt.Errorf("parse question bank %s: %w", path, err)
	}

	items := make([]Item, 0, len(bank.Questions))
	for _, q := range bank.Questions {
		it := q.Item
		if q.C != nil {
			it.C = *q.C
		} else {
			it.C = DefaultGuessing
		}
		if it.Topic == "" {
			it.Topic = bank.Topic
		}
		if strings.TrimSpace(it.Topic) == "" {
			return nil, fmt.Errorf("question bank %s: item %q has no topic", path, it.ID)
		}
		if it.InitCode == "" {
			it.InitCode = "solve()"
		}
		items = append(items, it)
	}
	return items, nil
}

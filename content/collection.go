package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Data-authoring errors. Any of these halts store construction.
var (
	ErrDuplicateSlug    = errors.New("duplicate slug")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrInvalidEntity    = errors.New("invalid entity")
	ErrMissingDocument  = errors.New("missing legal document")
	ErrDuplicateSection = errors.New("duplicate section id")
)

// Collection is a read-only, indexed set of entities of one kind. It is built
// once by NewCollection and safe for concurrent readers. Entities go in and
// come out as clones, so no caller can reach the indexed copies.
type Collection[T Item[T]] struct {
	name       string
	items      []T
	bySlug     map[string]int
	byID       map[string]int
	byCategory map[string][]int
	categories []string
	recent     []int
}

// NewCollection validates items and builds the slug, category and recency
// indexes. Insertion order is the order of items.
func NewCollection[T Item[T]](name string, items []T) (*Collection[T], error) {
	c := &Collection[T]{
		name:       name,
		items:      make([]T, len(items)),
		bySlug:     make(map[string]int, len(items)),
		byID:       make(map[string]int, len(items)),
		byCategory: make(map[string][]int),
	}
	for i, item := range items {
		c.items[i] = item.Clone()
	}
	for i, item := range c.items {
		m := item.Meta()
		if err := validateEntity(m); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		if prev, ok := c.bySlug[m.Slug]; ok {
			return nil, fmt.Errorf("%s: %w %q (ids %q and %q)", name, ErrDuplicateSlug, m.Slug, c.items[prev].Meta().ID, m.ID)
		}
		if prev, ok := c.byID[m.ID]; ok {
			return nil, fmt.Errorf("%s: %w %q (slugs %q and %q)", name, ErrDuplicateID, m.ID, c.items[prev].Meta().Slug, m.Slug)
		}
		c.byID[m.ID] = i
		c.bySlug[m.Slug] = i
		if _, seen := c.byCategory[m.Category]; !seen {
			c.categories = append(c.categories, m.Category)
		}
		c.byCategory[m.Category] = append(c.byCategory[m.Category], i)
		c.recent = append(c.recent, i)
	}
	sort.SliceStable(c.recent, func(a, b int) bool {
		return c.items[c.recent[a]].Meta().PublishedAt.After(c.items[c.recent[b]].Meta().PublishedAt)
	})
	return c, nil
}

func validateEntity(m Entity) error {
	switch {
	case m.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidEntity)
	case m.Slug == "":
		return fmt.Errorf("%w: %q has an empty slug", ErrInvalidEntity, m.ID)
	case strings.ContainsAny(m.Slug, "/?#% "):
		return fmt.Errorf("%w: slug %q is not URL-safe", ErrInvalidEntity, m.Slug)
	case strings.TrimSpace(m.Title) == "":
		return fmt.Errorf("%w: %q has an empty title", ErrInvalidEntity, m.ID)
	case strings.TrimSpace(m.Excerpt) == "":
		return fmt.Errorf("%w: %q has an empty excerpt", ErrInvalidEntity, m.ID)
	case m.Category == "":
		return fmt.Errorf("%w: %q has no category", ErrInvalidEntity, m.ID)
	case m.PublishedAt.IsZero():
		return fmt.Errorf("%w: %q has no publish date", ErrInvalidEntity, m.ID)
	}
	return nil
}

// Name returns the collection name, e.g. "blog".
func (c *Collection[T]) Name() string { return c.name }

// Len returns the number of entities.
func (c *Collection[T]) Len() int { return len(c.items) }

// All returns every entity in insertion order.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = item.Clone()
	}
	return out
}

// FindBySlug returns the entity whose slug matches exactly. The match is
// case-sensitive; a miss returns false, never an error.
func (c *Collection[T]) FindBySlug(slug string) (T, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i].Clone(), true
}

func (c *Collection[T]) entityByID(id string) (Entity, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Entity{}, false
	}
	return c.items[i].Meta(), true
}

// ByCategory returns the entities in category, in insertion order.
func (c *Collection[T]) ByCategory(category string) []T {
	return c.pick(c.byCategory[category])
}

// Search returns entities whose title, excerpt or any tag contains term,
// ignoring case. A blank term matches everything.
func (c *Collection[T]) Search(term string) []T {
	return c.Filter("", term)
}

// Filter narrows Search to one category. An empty category matches every
// category.
func (c *Collection[T]) Filter(category, term string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []T
	for _, item := range c.items {
		m := item.Meta()
		if category != "" && m.Category != category {
			continue
		}
		if term != "" && !matches(m, term) {
			continue
		}
		out = append(out, item.Clone())
	}
	return out
}

// Where returns the entities for which keep reports true, in insertion order.
func (c *Collection[T]) Where(keep func(T) bool) []T {
	var out []T
	for _, item := range c.items {
		if item := item.Clone(); keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func matches(m Entity, term string) bool {
	if strings.Contains(strings.ToLower(m.Title), term) ||
		strings.Contains(strings.ToLower(m.Excerpt), term) {
		return true
	}
	for _, t := range m.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

// Recent returns up to n entities, most recently published first. Entities
// published on the same day keep their insertion order.
func (c *Collection[T]) Recent(n int) []T {
	if n <= 0 {
		return nil
	}
	if n > len(c.recent) {
		n = len(c.recent)
	}
	return c.pick(c.recent[:n])
}

// RecentExcluding returns Recent(n) without the entity with the given slug.
// The result may therefore hold n-1 entities.
func (c *Collection[T]) RecentExcluding(n int, slug string) []T {
	var out []T
	for _, item := range c.Recent(n) {
		if item.Meta().Slug != slug {
			out = append(out, item)
		}
	}
	return out
}

// Categories returns the distinct categories present, in first-seen order.
func (c *Collection[T]) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Tags returns every distinct tag, sorted.
func (c *Collection[T]) Tags() []string {
	set := make(map[string]struct{})
	for _, item := range c.items {
		for _, t := range item.Meta().Tags {
			set[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func (c *Collection[T]) pick(idx []int) []T {
	if len(idx) == 0 {
		return nil
	}
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = c.items[j].Clone()
	}
	return out
}

// Package content serves the blog, FAQ and about page text.
package content

import (
	_ "embed"
	"fmt"
	"sort"
	"time"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"gopkg.in/yaml.v3"
)

//go:embed data/content.yaml
var contentYAML []byte

const dateLayout = "2006-01-02"

type postRecord struct {
	models.BlogPost `yaml:",inline"`
	PublishedAt     string `yaml:"publishedAt"`
}

type document struct {
	Posts []postRecord     `yaml:"posts"`
	FAQs  []models.FAQ     `yaml:"faqs"`
	About models.AboutPage `yaml:"about"`
}

type Store struct {
	posts []models.BlogPost
	byID  map[string]int
	faqs  []models.FAQ
	about models.AboutPage
}

func Load() (*Store, error) {
	return Parse(contentYAML)
}

func Parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}

	s := &Store{
		byID:  make(map[string]int, len(doc.Posts)),
		faqs:  doc.FAQs,
		about: doc.About,
	}
	for _, rec := range doc.Posts {
		post := rec.BlogPost
		if post.ID == "" {
			return nil, fmt.Errorf("blog post %q has no id", post.Title)
		}
		if _, dup := s.byID[post.ID]; dup {
			return nil, fmt.Errorf("duplicate blog post id %q", post.ID)
		}
		published, err := time.Parse(dateLayout, rec.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("blog post %s: %w", post.ID, err)
		}
		post.PublishedAt = published
		s.posts = append(s.posts, post)
	}

	sort.SliceStable(s.posts, func(i, j int) bool {
		return s.posts[i].PublishedAt.After(s.posts[j].PublishedAt)
	})
	for i, p := range s.posts {
		s.byID[p.ID] = i
	}
	return s, nil
}

// Posts returns every post, newest first.
func (s *Store) Posts() []models.BlogPost {
	return clonePosts(s.posts)
}

func (s *Store) PostByID(id string) (models.BlogPost, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.BlogPost{}, false
	}
	return clonePost(s.posts[i]), true
}

func (s *Store) Featured() []models.BlogPost {
	return s.filter(func(p models.BlogPost) bool { return p.Featured })
}

func (s *Store) ByCategory(category string) []models.BlogPost {
	return s.filter(func(p models.BlogPost) bool { return p.Category == category })
}

// Categories lists each post category once, in order of first appearance.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.posts {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

func (s *Store) FAQ() []models.FAQ {
	return append([]models.FAQ{}, s.faqs...)
}

func (s *Store) About() models.AboutPage {
	a := s.about
	a.Values = append([]models.CoreValue{}, a.Values...)
	a.Story = append([]string{}, a.Story...)
	return a
}

func (s *Store) filter(keep func(models.BlogPost) bool) []models.BlogPost {
	out := []models.BlogPost{}
	for _, p := range s.posts {
		if keep(p) {
			out = append(out, clonePost(p))
		}
	}
	return out
}

func clonePosts(src []models.BlogPost) []models.BlogPost {
	out := make([]models.BlogPost, len(src))
	for i, p := range src {
		out[i] = clonePost(p)
	}
	return out
}

func clonePost(p models.BlogPost) models.BlogPost {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

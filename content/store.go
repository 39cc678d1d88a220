package content

import (
	"fmt"
	"strings"
)

// Store is the canonical set of site content. It has no mutation API.
type Store struct {
	Blog        *Collection[BlogPost]
	CaseStudies *Collection[CaseStudy]
	legal       map[string]LegalDocument
}

// RequiredDocuments are the legal documents every store must carry, since
// their routes have no fallback.
var RequiredDocuments = []string{PrivacyPolicyID, TermsOfServiceID}

// NewStore indexes the given content. It returns an error describing the
// first data-authoring defect it finds; callers are expected to treat that
// as fatal.
func NewStore(posts []BlogPost, studies []CaseStudy, docs []LegalDocument) (*Store, error) {
	blog, err := NewCollection("blog", posts)
	if err != nil {
		return nil, err
	}
	cases, err := NewCollection("case-studies", studies)
	if err != nil {
		return nil, err
	}
	for _, p := range blog.items {
		if cs, ok := cases.entityByID(p.ID); ok {
			return nil, fmt.Errorf("%w %q shared by blog post %q and case study %q", ErrDuplicateID, p.ID, p.Slug, cs.Slug)
		}
	}
	legal := make(map[string]LegalDocument, len(docs))
	for _, doc := range docs {
		if err := validateDocument(doc); err != nil {
			return nil, err
		}
		if _, dup := legal[doc.ID]; dup {
			return nil, fmt.Errorf("legal: %w %q", ErrDuplicateID, doc.ID)
		}
		legal[doc.ID] = doc.Clone()
	}
	for _, id := range RequiredDocuments {
		if _, ok := legal[id]; !ok {
			return nil, fmt.Errorf("legal: %w %q", ErrMissingDocument, id)
		}
	}
	return &Store{Blog: blog, CaseStudies: cases, legal: legal}, nil
}

func validateDocument(doc LegalDocument) error {
	if doc.ID == "" || strings.TrimSpace(doc.Title) == "" {
		return fmt.Errorf("legal: %w: document %q needs an id and a title", ErrInvalidEntity, doc.ID)
	}
	if len(doc.Sections) == 0 {
		return fmt.Errorf("legal: %w: document %q has no sections", ErrInvalidEntity, doc.ID)
	}
	seen := make(map[string]struct{}, len(doc.Sections))
	for _, s := range doc.Sections {
		if s.ID == "" {
			return fmt.Errorf("legal: %w: document %q has a section without id", ErrInvalidEntity, doc.ID)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("legal: %s: %w %q", doc.ID, ErrDuplicateSection, s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}

// Default builds the store from the bundled content.
func Default() (*Store, error) {
	return NewStore(blogPosts, caseStudies, []LegalDocument{privacyPolicy, termsOfService})
}

// LegalDocument returns the document with the given id.
func (s *Store) LegalDocument(id string) (LegalDocument, bool) {
	doc, ok := s.legal[id]
	return doc.Clone(), ok
}

// FeaturedPosts returns blog posts flagged as featured, in insertion order.
func (s *Store) FeaturedPosts() []BlogPost {
	return s.Blog.Where(func(p BlogPost) bool { return p.Featured })
}

// FeaturedCaseStudies returns case studies flagged as featured.
func (s *Store) FeaturedCaseStudies() []CaseStudy {
	return s.CaseStudies.Where(func(cs CaseStudy) bool { return cs.Featured })
}

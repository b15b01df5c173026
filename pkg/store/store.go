// Package store binds the goal mapper to a storage backend: loading the goal
// collection, saving single goals with their bodies preserved, and coalescing
// rapid repeated saves per file.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"almanac/pkg/frontmatter"
	"almanac/pkg/goal"
)

// ErrNoBackend is returned when the store was built without a storage
// backend; distinct from a failed write.
var ErrNoBackend = errors.New("no storage backend available")

// SaveError wraps a failed write with the record it was for.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Store manages the goal collection on top of a Backend.
type Store struct {
	backend Backend
	cache   *ContentCache
	sched   Scheduler
	opts    goal.Options

	// Logf receives loader skip notices; defaults to stderr.
	Logf func(format string, args ...any)
	// OnSaveError receives failures from debounced saves, which have no
	// caller left to return an error to.
	OnSaveError func(path string, err error)
}

// NewStore wires a store from its collaborators. A nil scheduler means
// synchronous saves.
func NewStore(backend Backend, cache *ContentCache, sched Scheduler, opts goal.Options) *Store {
	if cache == nil {
		cache = NewContentCache()
	}
	if sched == nil {
		sched = Immediate{}
	}
	return &Store{
		backend: backend,
		cache:   cache,
		sched:   sched,
		opts:    opts,
		Logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
}

// LoadGoals reads every record from the backend and maps it to a Goal. A
// record that fails to map is logged and skipped; one corrupt file must not
// block the rest of the collection.
func (s *Store) LoadGoals() ([]*goal.Goal, error) {
	if s.backend == nil {
		return nil, ErrNoBackend
	}
	files, err := s.backend.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}

	var goals []*goal.Goal
	for _, f := range files {
		g, err := s.mapFile(f)
		if err != nil {
			s.Logf("skipping %s: %v", f.Path, err)
			continue
		}
		s.cache.Set(f.Path, f.Content)
		goals = append(goals, g)
	}
	return goals, nil
}

// mapFile converts one raw record, converting a mapper panic into an error so
// the loader can skip the file.
func (s *Store) mapFile(f File) (g *goal.Goal, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing goal: %v", r)
		}
	}()
	rec := frontmatter.Parse(f.Content)
	return goal.FromRecord(rec, f.Content, f.Path, f.Category, s.opts), nil
}

// Save writes a goal immediately. The markdown body comes from the cached
// file content when available, so hand-written notes survive structural
// edits untouched.
func (s *Store) Save(g *goal.Goal) error {
	if s.backend == nil {
		return ErrNoBackend
	}
	content := s.render(g)
	if err := s.backend.Save(g.FilePath, content); err != nil {
		return &SaveError{Path: g.FilePath, Err: err}
	}
	s.cache.Set(g.FilePath, content)
	g.Body = frontmatter.Body(content)
	return nil
}

// QueueSave schedules a debounced save. A newer queued save for the same
// goal replaces a pending one; failures go to OnSaveError.
func (s *Store) QueueSave(g *goal.Goal) {
	s.sched.Schedule(g.FilePath, func() {
		if err := s.Save(g); err != nil {
			if s.OnSaveError != nil {
				s.OnSaveError(g.FilePath, err)
			} else {
				s.Logf("save failed: %v", err)
			}
		}
	})
}

// Flush runs any pending debounced saves now.
func (s *Store) Flush() {
	s.sched.Flush()
}

// Delete removes a goal's backing record and cancels any pending save for it.
func (s *Store) Delete(g *goal.Goal) error {
	if s.backend == nil {
		return ErrNoBackend
	}
	s.sched.Cancel(g.FilePath)
	if err := s.backend.Delete(g.FilePath); err != nil {
		return fmt.Errorf("deleting %s: %w", g.FilePath, err)
	}
	s.cache.Delete(g.FilePath)
	return nil
}

func (s *Store) render(g *goal.Goal) string {
	body := g.Body
	if prev, ok := s.cache.Get(g.FilePath); ok {
		body = frontmatter.Body(prev)
	}
	clone := *g
	clone.Body = body
	return goal.ToMarkdown(&clone)
}

// CreateGoal authors a new goal file in a category. The file name is slugged
// from the title, with a short random suffix on collision. Requires a
// filesystem backend, since the path is minted here.
func (s *Store) CreateGoal(category, title string, typ goal.Type) (*goal.Goal, error) {
	fsb, ok := s.backend.(*FSBackend)
	if !ok {
		return nil, ErrNoBackend
	}

	dir := fsb.GoalsDir()
	if category != "" {
		dir = filepath.Join(dir, category)
	}
	slug := Slugify(title)
	path := filepath.Join(dir, slug+".md")
	if _, err := os.Stat(path); err == nil {
		path = filepath.Join(dir, slug+"-"+uuid.NewString()[:8]+".md")
	}

	opts := s.opts
	if opts.Today.IsZero() {
		opts.Today = goal.Midnight(time.Now())
	}
	if opts.FarFuture.IsZero() {
		opts.FarFuture = goal.DefaultFarFuture
	}
	g := &goal.Goal{
		ID:        strings.TrimSuffix(filepath.Base(path), ".md"),
		Title:     title,
		Type:      typ,
		Status:    goal.StatusActive,
		Priority:  goal.PriorityMedium,
		StartDate: opts.Today,
		EndDate:   opts.FarFuture,
		Category:  category,
		FilePath:  path,
	}
	if err := s.Save(g); err != nil {
		return nil, err
	}
	return g, nil
}

// Slugify lowercases a title into a file-name-safe slug.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Package console provides a Reporter that writes run progress to a terminal or plain stream.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/rag-indexer/internal/core/domain"
	"github.com/custodia-labs/rag-indexer/internal/core/ports/driven"
)

// Ensure Reporter implements the interface.
var _ driven.Reporter = (*Reporter)(nil)

const ruleWidth = 50

// Theme defines the colours used when output is styled.
type Theme struct {
	Title   lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
		Error:   lipgloss.Color("#F38BA8"), // Red
	}
}

type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	error   lipgloss.Style
}

func newStyles(w io.Writer, theme Theme) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Foreground(theme.Title).Bold(true),
		muted:   r.NewStyle().Foreground(theme.Muted),
		success: r.NewStyle().Foreground(theme.Success),
		warning: r.NewStyle().Foreground(theme.Warning),
		error:   r.NewStyle().Foreground(theme.Error).Bold(true),
	}
}

// Reporter writes the progress of an indexing run line by line.
// It is safe for concurrent use.
type Reporter struct {
	mu     sync.Mutex
	out    io.Writer
	styled bool
	styles styles
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithStyle forces styled (true) or plain (false) output.
func WithStyle(styled bool) Option {
	return func(r *Reporter) {
		r.styled = styled
	}
}

// New creates a reporter writing to out.
// Output is styled only when out is a terminal unless WithStyle says otherwise.
func New(out io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		out:    out,
		styled: isTerminal(out),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.styled {
		r.styles = newStyles(out, DefaultTheme())
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// RunStarted prints the banner.
func (r *Reporter) RunStarted(location string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rule()
	r.println(r.paint(r.styles.title, "RAG Document Indexing"))
	r.rule()
	r.printf("Documents: %s\n\n", location)
}

// StoreLookup prints the lookup notice.
func (r *Reporter) StoreLookup(_ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.println("Checking for existing vector store...")
}

// StoreCreating prints the name of the store about to be created.
func (r *Reporter) StoreCreating(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.printf("Creating new vector store: %s\n", name)
}

// StoreResolved prints the store that will be used.
func (r *Reporter) StoreResolved(store domain.VectorStore, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if created {
		r.println(r.paint(r.styles.success, "✅ Created vector store: "+store.ID))
	} else {
		r.println(r.paint(r.styles.success, "✅ Found existing vector store: "+store.ID))
	}
	r.printf("Using Vector Store ID: %s\n\n", store.ID)
}

// DocumentsDiscovered prints the number of documents found.
func (r *Reporter) DocumentsDiscovered(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.printf("Found %d document(s) to index\n\n", count)
}

// DocumentStarted prints the document header and its chunk count.
func (r *Reporter) DocumentStarted(name string, chunks int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.printf("📄 Processing: %s\n", name)
	r.println(r.paint(r.styles.muted, fmt.Sprintf("   Created %d chunks", chunks)))
}

// ChunkFailed prints a warning for a chunk that was not indexed.
func (r *Reporter) ChunkFailed(_ string, index int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.println(r.paint(r.styles.warning, fmt.Sprintf("   ⚠️  Warning: Failed to insert chunk %d: %v", index, err)))
}

// DocumentFinished prints the indexed/total ratio, or the read error.
func (r *Reporter) DocumentFinished(result domain.DocumentResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if result.Err != nil {
		r.printf("📄 Processing: %s\n", result.Name)
		r.println(r.paint(r.styles.error, fmt.Sprintf("   ❌ Error: %v", result.Err)))
		return
	}
	r.println(r.paint(r.styles.success,
		fmt.Sprintf("   ✅ Successfully indexed %d/%d chunks", result.Indexed, result.Chunks)))
}

// RunFinished prints the summary.
func (r *Reporter) RunFinished(result *domain.RunResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.println("")
	r.rule()
	r.println(r.paint(r.styles.success, "✅ Indexing Complete!"))
	r.printf("   Vector Store: %s\n", result.StoreID)
	r.printf("   Total documents: %d\n", result.DocumentsFound)
	r.printf("   Total chunks indexed: %d\n", result.ChunksIndexed)
	if failed := result.ChunksFailed(); failed > 0 {
		r.println(r.paint(r.styles.warning, fmt.Sprintf("   Chunks failed: %d", failed)))
	}
	r.rule()
}

// RunAborted prints the fatal error.
func (r *Reporter) RunAborted(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.println(r.paint(r.styles.error, fmt.Sprintf("❌ Error: %v", err)))
}

func (r *Reporter) paint(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

func (r *Reporter) rule() {
	r.println(r.paint(r.styles.muted, strings.Repeat("=", ruleWidth)))
}

func (r *Reporter) println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

func (r *Reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

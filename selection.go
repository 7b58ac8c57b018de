package diffselect

import "slices"

// Mode is the granularity of selection and navigation.
type Mode int

// Selection modes.
const (
	ModeHunk Mode = iota
	ModeLine
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeHunk:
		return "hunk"
	case ModeLine:
		return "line"
	default:
		return "unknown"
	}
}

// Selection tracks the cursor and selected region in a diff tree. It owns
// a head position (the active endpoint), an optional tail position (the
// anchor), and a mode. All mutation happens through its methods, each of
// which delivers one change notification, and every navigation call
// re-reads the tree from the provider.
//
// Selection is not safe for concurrent use; it is a synchronous,
// single-threaded state machine.
type Selection struct {
	provider Provider

	head    Position
	tail    Position
	hasTail bool
	mode    Mode

	nextID    int
	listeners []listener
}

type listener struct {
	id int
	fn func()
}

// Option configures a Selection at construction.
type Option func(*Selection)

// WithMode sets the initial selection mode.
func WithMode(m Mode) Option {
	return func(s *Selection) { s.mode = m }
}

// WithHead sets the initial head position.
func WithHead(p Position) Option {
	return func(s *Selection) { s.head = p }
}

// WithTail sets the initial tail anchor.
func WithTail(p Position) Option {
	return func(s *Selection) {
		s.tail = p
		s.hasTail = true
	}
}

// New creates a Selection bound to the given diff tree provider.
// Defaults: hunk mode, head at the first hunk of the first file, no tail.
func New(provider Provider, opts ...Option) *Selection {
	s := &Selection{
		provider: provider,
		head:     HunkPos(0, 0),
		mode:     ModeHunk,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnDidChange registers fn to be called whenever the head, tail, or mode
// changes. Delivery is synchronous, in registration order, within the
// call that triggered it. The returned function unsubscribes.
func (s *Selection) OnDidChange(fn func()) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Selection) emitChange() {
	// Dispatch over a snapshot so a listener unsubscribing itself does
	// not shift the slice under the iteration.
	for _, l := range slices.Clone(s.listeners) {
		l.fn()
	}
}

// Head returns the active endpoint of the selection.
func (s *Selection) Head() Position {
	return s.head
}

// SetHead moves the active endpoint directly.
func (s *Selection) SetHead(p Position) {
	s.head = p
	s.emitChange()
}

// Tail returns the anchor endpoint, or the head when no tail is set, so a
// point selection always has a well-defined, degenerate tail.
func (s *Selection) Tail() Position {
	if s.hasTail {
		return s.tail
	}
	return s.head
}

// HasTail reports whether a tail anchor is set.
func (s *Selection) HasTail() bool {
	return s.hasTail
}

// SetTail sets the anchor endpoint.
func (s *Selection) SetTail(p Position) {
	s.tail = p
	s.hasTail = true
	s.emitChange()
}

// ClearTail collapses the selection to a point at the head.
func (s *Selection) ClearTail() {
	s.tail = Position{}
	s.hasTail = false
	s.emitChange()
}

// Range returns the selection endpoints sorted ascending, so low is
// always at or before high regardless of which endpoint the head is on.
func (s *Selection) Range() (low, high Position) {
	a, b := s.head, s.Tail()
	if ComparePositions(a, b) <= 0 {
		return a, b
	}
	return b, a
}

// Mode returns the current selection mode.
func (s *Selection) Mode() Mode {
	return s.mode
}

// ToggleMode switches between hunk and line granularity.
func (s *Selection) ToggleMode() {
	if s.mode == ModeHunk {
		s.SetMode(ModeLine)
	} else {
		s.SetMode(ModeHunk)
	}
}

// SetMode sets the selection mode. Setting the current mode is a no-op
// and delivers no notification. Entering line mode with no tail anchors
// the head to the first changed line of its hunk, or line 0 when the hunk
// has no changed lines; with a tail set, both endpoints are left
// untouched and their line components carry over as advisory.
func (s *Selection) SetMode(m Mode) {
	if m == s.mode {
		return
	}
	s.mode = m
	if m == ModeLine && !s.hasTail {
		line, ok := s.FirstChangedLineInHunk(s.head)
		if !ok {
			line = 0
		}
		s.head = LinePos(s.head.File, s.head.Hunk, line)
	}
	s.emitChange()
}

// MoveUp collapses the selection to its low boundary, clears the tail,
// and steps the head one unit backward.
func (s *Selection) MoveUp() {
	low, _ := s.Range()
	s.head = low
	s.hasTail = false
	s.MoveHeadUp()
}

// MoveDown collapses the selection to its high boundary, clears the
// tail, and steps the head one unit forward.
func (s *Selection) MoveDown() {
	_, high := s.Range()
	s.head = high
	s.hasTail = false
	s.MoveHeadDown()
}

// ExpandUp anchors the tail at the head if no tail is set, then steps
// the head one unit backward. Depending on which side of the anchor the
// head is on this grows or shrinks the selection.
func (s *Selection) ExpandUp() {
	if !s.hasTail {
		s.tail = s.head
		s.hasTail = true
	}
	s.MoveHeadUp()
}

// ExpandDown anchors the tail at the head if no tail is set, then steps
// the head one unit forward.
func (s *Selection) ExpandDown() {
	if !s.hasTail {
		s.tail = s.head
		s.hasTail = true
	}
	s.MoveHeadDown()
}

// MoveHeadUp steps the head to the previous hunk in hunk mode, or the
// previous changed line in line mode. A notification is delivered even
// when the head is clamped at a boundary and does not move.
func (s *Selection) MoveHeadUp() {
	if s.mode == ModeHunk {
		s.head = s.PreviousHunkPosition(s.head)
	} else {
		s.head = s.PreviousChangedLinePosition(s.head)
	}
	s.emitChange()
}

// MoveHeadDown steps the head to the next hunk in hunk mode, or the next
// changed line in line mode. A notification is delivered even when the
// head is clamped at a boundary and does not move.
func (s *Selection) MoveHeadDown() {
	if s.mode == ModeHunk {
		s.head = s.NextHunkPosition(s.head)
	} else {
		s.head = s.NextChangedLinePosition(s.head)
	}
	s.emitChange()
}

func (s *Selection) diffFiles() []FileDiff {
	d := s.provider.Diff()
	if d == nil {
		return nil
	}
	return d.Files
}

func (s *Selection) hunksAt(file int) []Hunk {
	files := s.diffFiles()
	if file < 0 || file >= len(files) {
		return nil
	}
	return files[file].Hunks
}

func (s *Selection) linesAt(file, hunk int) []Line {
	hunks := s.hunksAt(file)
	if hunk < 0 || hunk >= len(hunks) {
		return nil
	}
	return hunks[hunk].Lines
}

// PreviousHunkPosition returns the hunk position one hunk before p:
// the previous hunk in the same file, or the last hunk of the previous
// file. At the start of the tree p is returned unchanged.
func (s *Selection) PreviousHunkPosition(p Position) Position {
	if p.Hunk > 0 {
		return HunkPos(p.File, p.Hunk-1)
	}
	if p.File > 0 {
		hunks := s.hunksAt(p.File - 1)
		if len(hunks) == 0 {
			return p
		}
		return HunkPos(p.File-1, len(hunks)-1)
	}
	return p
}

// NextHunkPosition returns the hunk position one hunk after p: the next
// hunk in the same file, or the first hunk of the next file. At the end
// of the tree p is returned unchanged.
func (s *Selection) NextHunkPosition(p Position) Position {
	if hunks := s.hunksAt(p.File); p.Hunk < len(hunks)-1 {
		return HunkPos(p.File, p.Hunk+1)
	}
	if files := s.diffFiles(); p.File < len(files)-1 {
		if len(s.hunksAt(p.File+1)) == 0 {
			return p
		}
		return HunkPos(p.File+1, 0)
	}
	return p
}

// NextChangedLineInHunk scans p's hunk for the first changed line
// strictly after p's line component, treating an absent line component
// as before the start of the hunk. The second return is false when the
// hunk has no changed line after that point.
func (s *Selection) NextChangedLineInHunk(p Position) (int, bool) {
	lines := s.linesAt(p.File, p.Hunk)
	for i := p.Line + 1; i < len(lines); i++ {
		if lines[i].Type.Changed() {
			return i, true
		}
	}
	return 0, false
}

// PreviousChangedLineInHunk scans p's hunk for the first changed line
// strictly before p's line component, treating an absent or overflowing
// line component as past the end of the hunk.
func (s *Selection) PreviousChangedLineInHunk(p Position) (int, bool) {
	lines := s.linesAt(p.File, p.Hunk)
	start := p.Line - 1
	if !p.HasLine() || p.Line >= len(lines) {
		start = len(lines) - 1
	}
	for i := start; i >= 0; i-- {
		if lines[i].Type.Changed() {
			return i, true
		}
	}
	return 0, false
}

// FirstChangedLineInHunk returns the index of the first changed line in
// p's hunk.
func (s *Selection) FirstChangedLineInHunk(p Position) (int, bool) {
	return s.NextChangedLineInHunk(HunkPos(p.File, p.Hunk))
}

// LastChangedLineInHunk returns the index of the last changed line in
// p's hunk.
func (s *Selection) LastChangedLineInHunk(p Position) (int, bool) {
	return s.PreviousChangedLineInHunk(HunkPos(p.File, p.Hunk))
}

// PreviousChangedLinePosition returns the line position of the changed
// line before p: earlier in the same hunk, else the last changed line of
// the previous hunk, else the last changed line of the previous file's
// last hunk. A target hunk with no changed lines yields line 0. At the
// start of the tree p is returned unchanged.
func (s *Selection) PreviousChangedLinePosition(p Position) Position {
	if line, ok := s.PreviousChangedLineInHunk(p); ok {
		return LinePos(p.File, p.Hunk, line)
	}
	if p.Hunk > 0 {
		line, _ := s.LastChangedLineInHunk(HunkPos(p.File, p.Hunk-1))
		return LinePos(p.File, p.Hunk-1, line)
	}
	if p.File > 0 {
		hunks := s.hunksAt(p.File - 1)
		if len(hunks) == 0 {
			return p
		}
		hunk := len(hunks) - 1
		line, _ := s.LastChangedLineInHunk(HunkPos(p.File-1, hunk))
		return LinePos(p.File-1, hunk, line)
	}
	return p
}

// NextChangedLinePosition returns the line position of the changed line
// after p: later in the same hunk, else the first changed line of the
// next hunk, else the first changed line of the next file's first hunk.
// A target hunk with no changed lines yields line 0. At the end of the
// tree p is returned unchanged.
func (s *Selection) NextChangedLinePosition(p Position) Position {
	if line, ok := s.NextChangedLineInHunk(p); ok {
		return LinePos(p.File, p.Hunk, line)
	}
	if hunks := s.hunksAt(p.File); p.Hunk < len(hunks)-1 {
		line, _ := s.FirstChangedLineInHunk(HunkPos(p.File, p.Hunk+1))
		return LinePos(p.File, p.Hunk+1, line)
	}
	if files := s.diffFiles(); p.File < len(files)-1 {
		if len(s.hunksAt(p.File+1)) == 0 {
			return p
		}
		line, _ := s.FirstChangedLineInHunk(HunkPos(p.File+1, 0))
		return LinePos(p.File+1, 0, line)
	}
	return p
}

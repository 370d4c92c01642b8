package quest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	fieldSeparator = "|"
	escapedPipe    = `\|`

	tagScore = "SCORE"
	tagXP    = "XP"
	tagLevel = "LEVEL"
)

var (
	// ErrMalformed marks a persisted line that cannot be decoded.
	ErrMalformed = errors.New("malformed record")
	// ErrUnencodable marks a goal field the line format cannot represent.
	ErrUnencodable = errors.New("field cannot be encoded")
)

// ParseError locates a malformed line in a save file.
type ParseError struct {
	Line int
	Tag  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Tag, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// State is everything a save file holds.
type State struct {
	Score int
	XP    int
	Level int
	Goals []Goal
}

// Escape writes every "|" as `\|`.
func Escape(s string) string {
	return strings.ReplaceAll(s, fieldSeparator, escapedPipe)
}

// Unescape turns every `\|` back into "|". Other backslashes pass through.
func Unescape(s string) string {
	return strings.ReplaceAll(s, escapedPipe, fieldSeparator)
}

// JoinRecord escapes fields and joins them with "|".
func JoinRecord(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = Escape(f)
	}
	return strings.Join(escaped, fieldSeparator)
}

// SplitRecord splits line on every "|" not preceded by a backslash.
// The returned fields are still escaped.
func SplitRecord(line string) []string {
	var fields []string
	start := 0
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\\' && i+1 < len(line) && line[i+1] == '|':
			i++
		case line[i] == '|':
			fields = append(fields, line[start:i])
			start = i + 1
		}
	}
	return append(fields, line[start:])
}

// Encode writes st in the line format: the three header lines, then one line per goal.
func Encode(w io.Writer, st State) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s|%d\n", tagScore, st.Score)
	fmt.Fprintf(bw, "%s|%d\n", tagXP, st.XP)
	fmt.Fprintf(bw, "%s|%d\n", tagLevel, st.Level)
	for i, g := range st.Goals {
		rec := g.SerializedRecord()
		for _, f := range rec {
			if strings.ContainsAny(f, "\r\n") {
				return fmt.Errorf("goal %d: %w: contains a line break", i+1, ErrUnencodable)
			}
			// A trailing `\` would escape the separator that follows it.
			if strings.HasSuffix(f, `\`) {
				return fmt.Errorf("goal %d: %w: ends with a backslash", i+1, ErrUnencodable)
			}
		}
		bw.WriteString(JoinRecord(rec))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Decode reads a save file. Headers are matched by tag and default to
// score 0, XP 0, level 1 when absent. Blank lines and unknown tags are skipped.
// Any malformed line fails the whole decode with a *ParseError.
func Decode(r io.Reader) (State, error) {
	st := State{Level: 1}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := SplitRecord(line)
		tag := fields[0]

		var err error
		switch tag {
		case tagScore:
			st.Score, err = decodeHeader(fields, nil)
		case tagXP:
			st.XP, err = decodeHeader(fields, func(n int) bool { return n >= 0 })
		case tagLevel:
			st.Level, err = decodeHeader(fields, func(n int) bool { return n >= 1 && n <= MaxLevel })
		case string(KindSimple), string(KindEternal), string(KindChecklist):
			var g Goal
			g, err = decodeGoal(Kind(tag), fields)
			if err == nil {
				st.Goals = append(st.Goals, g)
			}
		default:
			continue
		}
		if err != nil {
			return State{}, &ParseError{Line: lineNo, Tag: tag, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return State{}, fmt.Errorf("reading save data: %w", err)
	}

	// A file written by hand may carry more XP than its level holds.
	for st.Level < MaxLevel && st.XP >= st.Level*XPPerLevel {
		st.XP -= st.Level * XPPerLevel
		st.Level++
	}
	return st, nil
}

func decodeHeader(fields []string, valid func(int) bool) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: want 2 fields, got %d", ErrMalformed, len(fields))
	}
	n, err := parseInt("value", fields[1])
	if err != nil {
		return 0, err
	}
	if valid != nil && !valid(n) {
		return 0, fmt.Errorf("%w: value %d out of range", ErrMalformed, n)
	}
	return n, nil
}

var goalFieldCounts = map[Kind]int{
	KindSimple:    5,
	KindEternal:   4,
	KindChecklist: 7,
}

func decodeGoal(kind Kind, fields []string) (Goal, error) {
	if want := goalFieldCounts[kind]; len(fields) != want {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrMalformed, want, len(fields))
	}
	name := Unescape(fields[1])
	desc := Unescape(fields[2])
	points, err := parseInt("points", fields[3])
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindSimple:
		done, err := strconv.ParseBool(strings.TrimSpace(fields[4]))
		if err != nil {
			return nil, fmt.Errorf("%w: complete flag %q", ErrMalformed, fields[4])
		}
		g := NewSimpleGoal(name, desc, points)
		g.Complete = done
		return g, nil
	case KindEternal:
		return NewEternalGoal(name, desc, points), nil
	case KindChecklist:
		var nums [3]int
		for i, label := range []string{"target", "current", "bonus"} {
			if nums[i], err = parseInt(label, fields[4+i]); err != nil {
				return nil, err
			}
		}
		g := NewChecklistGoal(name, desc, points, nums[0], nums[2])
		g.Current = nums[1]
		return g, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformed, kind)
}

func parseInt(label, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformed, label, s)
	}
	return n, nil
}

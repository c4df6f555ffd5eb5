package parser

import (
	"github.com/melex-go/melex/grammar"
)

// frame is one activation of a rule definition on the stack: the rule, a step
// cursor into its sequence, the scratch capture fields, and the separator
// toggle used while the current item is a delimited list.
type frame struct {
	kind string
	rule grammar.Rule
	step int
	grammar.Scratch
	needsSep bool
}

// State is the resumable parse state: a vector-backed stack of rule frames
// plus indentation bookkeeping and the deferred-advance flag. States are
// plain self-contained values, cheap to clone; hosts snapshot one per line
// to re-lex a document incrementally from any line boundary.
type State struct {
	frames       []frame
	levels       []int
	indentLevel  int
	needsAdvance bool
}

// Clone returns an independent copy of the state. O(stack depth).
func (st *State) Clone() *State {
	res := &State{
		frames:       make([]frame, len(st.frames)),
		indentLevel:  st.indentLevel,
		needsAdvance: st.needsAdvance,
	}
	copy(res.frames, st.frames)
	if len(st.levels) > 0 {
		res.levels = make([]int, len(st.levels))
		copy(res.levels, st.levels)
	}
	return res
}

// Equal reports whether two states are field-for-field equal. Rule identity
// is implied by the frame's rule name, so function-valued definitions need
// no comparison.
func (st *State) Equal(other *State) bool {
	if other == nil ||
		st.indentLevel != other.indentLevel ||
		st.needsAdvance != other.needsAdvance ||
		len(st.frames) != len(other.frames) ||
		len(st.levels) != len(other.levels) {
		return false
	}

	for i, f := range st.frames {
		o := other.frames[i]
		if f.kind != o.kind || f.step != o.step || f.Scratch != o.Scratch || f.needsSep != o.needsSep {
			return false
		}
	}
	for i, l := range st.levels {
		if l != other.levels[i] {
			return false
		}
	}
	return true
}

// Depth returns the number of frames on the stack.
func (st *State) Depth() int {
	return len(st.frames)
}

// Context returns the active rule name and the Name/Type values captured by
// terminal update callbacks in the active frame. Completion layers use it to
// tell what construct the cursor is inside.
func (st *State) Context() (rule, name, typ string) {
	if len(st.frames) == 0 {
		return "", "", ""
	}
	f := st.top()
	return f.kind, f.Name, f.Type
}

// IndentLevel returns the indent level of the line being lexed, in indent units.
func (st *State) IndentLevel() int {
	return st.indentLevel
}

// Indent returns the suggested indentation for the next line, in columns,
// given the host's indent unit width.
func (st *State) Indent(unit int) int {
	if len(st.levels) > 0 {
		return st.levels[len(st.levels)-1] * unit
	}
	return st.indentLevel * unit
}

func (st *State) top() *frame {
	return &st.frames[len(st.frames)-1]
}

func (st *State) push(kind string, rule grammar.Rule) {
	st.frames = append(st.frames, frame{kind: kind, rule: rule})
}

func (st *State) pop() {
	st.frames = st.frames[:len(st.frames)-1]
}

// currentItem returns the item the frame's step cursor points at, or nil when
// the cursor is out of range or the rule is a fork.
func (f *frame) currentItem() grammar.Item {
	if f.rule.Fork != nil || f.step >= len(f.rule.Items) {
		return nil
	}
	return f.rule.Items[f.step]
}

// exhausted reports whether the frame has nothing left to match: the step
// cursor ran past the sequence, or a fork rule already committed.
func (f *frame) exhausted() bool {
	if f.rule.Fork != nil {
		return f.step > 0
	}
	return f.step >= len(f.rule.Items)
}

// advance moves the stack past the current item after a match (successful) or
// after deciding the item occurred zero times (not successful). List frames
// are kept in place for repetition: with a separator the toggle alternates
// between element and separator, without one the frame just stays. Completed
// frames are popped and completion cascades upward; the root frame is never
// popped, it parks on an exhausted step instead.
func (st *State) advance(successful bool) {
	for {
		f := st.top()
		if l, isList := f.currentItem().(grammar.List); isList && successful {
			if l.Sep != nil {
				f.needsSep = !f.needsSep
			}
			return
		}

		f.needsSep = false
		f.step++
		if !f.exhausted() || len(st.frames) == 1 {
			return
		}

		st.pop()
		// completing a frame counts as a successful match of the item
		// that pushed it
		successful = true
	}
}

// unwind discards frames that had no tolerance for failure. If an optional or
// list item is reached, the occurrence is treated as matched zero times and
// the same token may be retried; returns false when the stack is emptied.
func (st *State) unwind() bool {
	for len(st.frames) > 0 {
		switch st.top().currentItem().(type) {
		case grammar.Opt, grammar.List:
			st.advance(false)
			return true
		}
		st.pop()
	}
	return false
}

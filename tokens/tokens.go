package tokens

import (
	"sort"
	"strconv"
	"strings"
)

// Constant is a named integer constant of the native API.
type Constant struct {
	Name  string
	Value int32
}

// Table is a named group of constants, usually one API version or extension.
type Table struct {
	Name      string
	Constants []Constant
}

// Filter decides whether a constant of the named table is collected.
type Filter func(table string, c Constant) bool

// Prefix returns a Filter that accepts constants whose name starts with p.
func Prefix(p string) Filter {
	return func(_ string, c Constant) bool {
		return strings.HasPrefix(c.Name, p)
	}
}

// Collect returns a value-to-name map of every constant of tables accepted by filter.
// A nil filter accepts everything.
func Collect(tables []Table, filter Filter) map[int32]string {
	dst := make(map[int32]string)
	CollectInto(dst, tables, filter)
	return dst
}

// CollectInto adds the constants of tables accepted by filter to dst.
// A value already present under a different name is replaced by its hex form.
func CollectInto(dst map[int32]string, tables []Table, filter Filter) {
	for _, t := range tables {
		for _, c := range t.Constants {
			if filter != nil && !filter(t.Name, c) {
				continue
			}
			if prev, ok := dst[c.Value]; ok {
				// The same constant listed twice keeps its name.
				if prev != c.Name {
					dst[c.Value] = Hex(c.Value)
				}
				continue
			}
			dst[c.Value] = c.Name
		}
	}
}

// Hex returns v as "0x" followed by uppercase hex digits of its 32-bit two's complement.
func Hex(v int32) string {
	return "0x" + strings.ToUpper(strconv.FormatUint(uint64(uint32(v)), 16))
}

// Name returns the name recorded for v, or its hex form if there is none.
func Name(names map[int32]string, v int32) string {
	if n, ok := names[v]; ok {
		return n
	}
	return Hex(v)
}

// Ambiguous reports whether the entry for v was flagged as a collision.
func Ambiguous(names map[int32]string, v int32) bool {
	n, ok := names[v]
	return ok && n == Hex(v)
}

// Values returns the keys of names in ascending order.
func Values(names map[int32]string) []int32 {
	vs := make([]int32, 0, len(names))
	for v := range names {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// Set is a set of extension names.
type Set map[string]struct{}

// ParseExtensions splits list on whitespace into a Set. Duplicates collapse.
func ParseExtensions(list string) Set {
	fields := strings.Fields(list)
	s := make(Set, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names.
func (s Set) Len() int { return len(s) }

// Sorted returns the names in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
